package repositories

import (
	"sync"

	"inkwell/app/models"
)

// MemoryPostRepository implements PostRepository with an in-process map.
// Nothing survives a restart. The mutex serializes check-then-write
// sequences so concurrent creates cannot slip a duplicate title past the
// uniqueness check, and the id counter is never rewound, so ids are not
// reused after a delete.
type MemoryPostRepository struct {
	mu     sync.RWMutex
	posts  map[int]*models.Post
	nextID int
}

// NewMemoryPostRepository creates an empty in-memory repository
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

// Create creates a new post, assigning its ID and creation time
func (r *MemoryPostRepository) Create(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.Title == post.Title {
			return ErrDuplicateTitle
		}
	}

	post.ID = r.nextID
	r.nextID++
	post.BeforeCreate()

	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

// GetByID retrieves a post by ID
func (r *MemoryPostRepository) GetByID(id int) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// FindByTitle retrieves the post holding the given title, if any
func (r *MemoryPostRepository) FindByTitle(title string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.Title == title {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// GetAll retrieves every post, newest first
func (r *MemoryPostRepository) GetAll() ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		copied := *p
		posts = append(posts, &copied)
	}
	sortNewestFirst(posts)
	return posts, nil
}

// Update updates an existing post's title and content. The stored id and
// creation time are preserved.
func (r *MemoryPostRepository) Update(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[post.ID]
	if !ok {
		return ErrNotFound
	}

	for _, p := range r.posts {
		if p.Title == post.Title && p.ID != post.ID {
			return ErrDuplicateTitle
		}
	}

	post.CreatedAt = existing.CreatedAt
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

// Delete deletes a post by ID
func (r *MemoryPostRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// Close is a no-op for the in-memory backend
func (r *MemoryPostRepository) Close() error {
	return nil
}
