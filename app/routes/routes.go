package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(postController *controllers.PostController) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/add", postController.New).Methods("GET")
	router.HandleFunc("/add", postController.Create).Methods("POST")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/edit/{id:[0-9]+}", postController.EditForm).Methods("GET")
	router.HandleFunc("/edit/{id:[0-9]+}", postController.Edit).Methods("POST")
	router.HandleFunc("/delete/{id:[0-9]+}", postController.Delete).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
