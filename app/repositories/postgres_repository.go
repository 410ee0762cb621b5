package repositories

import (
	"database/sql"
	"strings"

	"inkwell/app/models"

	_ "github.com/lib/pq"
)

// PostgresPostRepository implements PostRepository on PostgreSQL. The
// unique index on title is the authoritative guard against duplicates:
// a create or update racing past a caller's pre-check is rejected by the
// constraint and surfaced as ErrDuplicateTitle.
type PostgresPostRepository struct {
	db *sql.DB
}

// OpenPostgres connects to the database at url and verifies the connection.
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// NewPostgresPostRepository creates a repository on an open connection pool
func NewPostgresPostRepository(db *sql.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// Create inserts a new post, assigning its ID and creation time
func (r *PostgresPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	query := `
		INSERT INTO posts (title, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, post.Title, post.Content, post.CreatedAt).Scan(&post.ID)
	if err != nil {
		return translateConstraint(err)
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *PostgresPostRepository) GetByID(id int) (*models.Post, error) {
	return r.scanOne(`
		SELECT id, title, content, created_at
		FROM posts
		WHERE id = $1
	`, id)
}

// FindByTitle retrieves the post holding the given title, if any
func (r *PostgresPostRepository) FindByTitle(title string) (*models.Post, error) {
	return r.scanOne(`
		SELECT id, title, content, created_at
		FROM posts
		WHERE title = $1
	`, title)
}

// GetAll retrieves every post, newest first
func (r *PostgresPostRepository) GetAll() ([]*models.Post, error) {
	query := `
		SELECT id, title, content, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// Update updates an existing post's title and content. created_at is never
// written, so the stored value cannot drift.
func (r *PostgresPostRepository) Update(post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2
		WHERE id = $3
		RETURNING created_at
	`
	err := r.db.QueryRow(query, post.Title, post.Content, post.ID).Scan(&post.CreatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return translateConstraint(err)
	}
	return nil
}

// Delete deletes a post by ID
func (r *PostgresPostRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying connection pool
func (r *PostgresPostRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresPostRepository) scanOne(query string, arg interface{}) (*models.Post, error) {
	var post models.Post
	err := r.db.QueryRow(query, arg).Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// translateConstraint maps a unique-index violation on the title column to
// ErrDuplicateTitle; anything else passes through untouched.
func translateConstraint(err error) error {
	if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "posts_title_key") {
		return ErrDuplicateTitle
	}
	return err
}
