package repositories

import "blogd/app/models"

// UserRepository defines the interface for user credential storage
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}

// PostRepository defines the interface for post document access. Every
// mutating operation other than first creation filters by (id, author);
// the merged not-found/unauthorized failure keeps other authors' posts
// indistinguishable from absent ones.
type PostRepository interface {
	Upsert(post *models.Post) error
	Patch(id string, patch *models.PostPatch, principal string) error
	Publish(id string, principal string) error
	GetByID(id string) (*models.Post, error)
	ListByAuthor(author string) ([]*models.Post, error)
}
