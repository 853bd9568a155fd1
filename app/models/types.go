package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Status describes the publication state of a post.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
)

// User represents a registered account. The password is stored only as a
// salted argon2id hash; the plaintext never reaches the repository layer.
type User struct {
	Username     string `json:"username" validate:"required,min=1,max=64"`
	PasswordHash string `json:"password_hash" validate:"required"`
}

// Post represents a blog post document. IDs are client-generated (UUIDs in
// practice) and globally unique across all authors. Content is the editor's
// opaque nested document payload and is stored as-is.
type Post struct {
	ID          string                 `json:"id" validate:"required,max=128"`
	Title       string                 `json:"title" validate:"required,max=200"`
	Content     map[string]interface{} `json:"content" validate:"required"`
	Status      Status                 `json:"status" validate:"required,oneof=Draft Published"`
	Author      string                 `json:"author" validate:"-"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at,omitempty"`
	PublishedAt *time.Time             `json:"published_at,omitempty"`
}

// PostPatch carries the fields a partial update may touch. Nil fields are
// left untouched by the merge.
type PostPatch struct {
	Title   *string                `json:"title"`
	Content map[string]interface{} `json:"content"`
}

// IsEmpty reports whether the patch would change nothing.
func (p *PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
