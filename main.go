package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog server (default).

Environment:
  STORE           Backend to use: postgres, badger or memory (default memory).
  DATABASE_URL    PostgreSQL connection string (required for STORE=postgres).
  SESSION_SECRET  Secret signing the session cookie (required).
  DELETE_KEY      Authorization key for deleting posts (unset blocks deletion).
  BADGER_PATH     Badger data directory (default data/badger).
  PORT            Listen port (default 8080).
`
	fmt.Println(helpText)
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open post store: %v", err)
	}
	defer repo.Close()

	postService := services.NewPostService(repo, cfg.DeleteKey)
	postController := controllers.NewPostController(postService, cfg.SessionSecret)
	router := routes.SetupRoutes(postController)

	log.Printf("inkwell listening on port %s (store: %s)", cfg.Port, cfg.Store)
	if err := routes.StartServer(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// openRepository selects the configured backend. The postgres backend also
// brings its schema up to date before serving.
func openRepository(cfg config.Config) (repositories.PostRepository, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := repositories.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := repositories.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		log.Println("Migrations completed successfully")
		return repositories.NewPostgresPostRepository(db), nil
	case config.StoreBadger:
		return repositories.NewBadgerPostRepository(cfg.BadgerPath)
	default:
		return repositories.NewMemoryPostRepository(), nil
	}
}
