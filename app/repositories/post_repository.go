package repositories

import (
	"sort"
	"time"

	"blogd/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// getPost loads a post inside an open transaction.
func getPost(txn *badger.Txn, id string) (*models.Post, error) {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func setPost(txn *badger.Txn, post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return txn.Set(postKey(post.ID), data)
}

// Upsert fully replaces the document under post.ID, or creates it. Replacing
// a document that belongs to another author fails with the merged
// not-found/unauthorized error instead of silently reassigning authorship.
func (r *BadgerPostRepository) Upsert(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		existing, err := getPost(txn, post.ID)
		if err != nil && err != ErrNotFound {
			return err
		}
		if existing != nil && existing.Author != post.Author {
			return ErrNotFoundOrUnauthorized
		}
		return setPost(txn, post)
	})
}

// Patch merges the non-nil patch fields into the stored document and stamps
// updated_at. An unknown id creates a fresh Draft owned by the principal;
// an existing document requires an author match.
func (r *BadgerPostRepository) Patch(id string, patch *models.PostPatch, principal string) error {
	now := time.Now()
	return r.db.Update(func(txn *badger.Txn) error {
		post, err := getPost(txn, id)
		switch err {
		case nil:
			if post.Author != principal {
				return ErrNotFoundOrUnauthorized
			}
		case ErrNotFound:
			post = &models.Post{
				ID:        id,
				Status:    models.StatusDraft,
				Author:    principal,
				CreatedAt: now,
			}
		default:
			return err
		}

		if patch.Title != nil {
			post.Title = *patch.Title
		}
		if patch.Content != nil {
			post.Content = patch.Content
		}
		post.UpdatedAt = &now

		return setPost(txn, post)
	})
}

// Publish transitions the post to Published and stamps published_at, but
// only when both id and author match. The transition is one-way; publishing
// an already published post is a no-op apart from the fresh timestamp.
func (r *BadgerPostRepository) Publish(id string, principal string) error {
	now := time.Now()
	return r.db.Update(func(txn *badger.Txn) error {
		post, err := getPost(txn, id)
		if err == ErrNotFound {
			return ErrNotFoundOrUnauthorized
		}
		if err != nil {
			return err
		}
		if post.Author != principal {
			return ErrNotFoundOrUnauthorized
		}

		post.Status = models.StatusPublished
		post.PublishedAt = &now

		return setPost(txn, post)
	})
}

// GetByID retrieves a post by id regardless of author.
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post *models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		p, err := getPost(txn, id)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListByAuthor returns the author's posts, newest first by created_at,
// capped at ListLimit.
func (r *BadgerPostRepository) ListByAuthor(author string) ([]*models.Post, error) {
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

			if post.Author == author {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > ListLimit {
		posts = posts[:ListLimit]
	}

	return posts, nil
}
