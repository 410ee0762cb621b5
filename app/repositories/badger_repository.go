package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB.
// A title index key per post makes the uniqueness check part of the same
// transaction as the write, so the store itself rejects duplicate titles.
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository opens the Badger database at path and returns a
// repository backed by it.
func NewBadgerPostRepository(path string) (*BadgerPostRepository, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return NewBadgerPostRepositoryWithDB(db), nil
}

// NewBadgerPostRepositoryWithDB creates a repository on an already open DB.
func NewBadgerPostRepositoryWithDB(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post, assigning its ID and creation time
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		// Reject a taken title inside the write transaction
		_, err := txn.Get(titleKey(post.Title))
		if err == nil {
			return ErrDuplicateTitle
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		if err := txn.Set(postKey(post.ID), data); err != nil {
			return err
		}
		return txn.Set(titleKey(post.Title), idBytes(post.ID))
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByTitle retrieves the post holding the given title, if any
func (r *BadgerPostRepository) FindByTitle(title string) (*models.Post, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(titleKey(title))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = bytesToID(val)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// GetAll retrieves every post, newest first
func (r *BadgerPostRepository) GetAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// Update updates an existing post's title and content. The stored id and
// creation time are preserved.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if post.Title != existing.Title {
			// The new title must be free; drop the old index entry
			_, err := txn.Get(titleKey(post.Title))
			if err == nil {
				return ErrDuplicateTitle
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(titleKey(existing.Title)); err != nil {
				return err
			}
			if err := txn.Set(titleKey(post.Title), idBytes(post.ID)); err != nil {
				return err
			}
		}

		post.CreatedAt = existing.CreatedAt
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if err := txn.Delete(titleKey(existing.Title)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

// Close closes the underlying database
func (r *BadgerPostRepository) Close() error {
	return r.db.Close()
}
