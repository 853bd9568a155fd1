package services

import (
	"fmt"
	"time"

	"blogd/app/models"
	"blogd/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	posts repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// SavePost upserts the full document under post.ID for the principal.
// Author and created_at are stamped server-side on every call; the client
// cannot claim someone else's identity in the payload.
func (s *PostService) SavePost(post *models.Post, principal string) error {
	post.Author = principal
	post.CreatedAt = time.Now()
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	return s.posts.Upsert(post)
}

// PatchPost merges the supplied fields into the post, creating a Draft
// owned by the principal when the id is unknown.
func (s *PostService) PatchPost(id string, patch *models.PostPatch, principal string) error {
	if id == "" {
		return fmt.Errorf("invalid post: id cannot be empty")
	}
	return s.posts.Patch(id, patch, principal)
}

// PublishPost moves the principal's post to Published.
func (s *PostService) PublishPost(id string, principal string) error {
	return s.posts.Publish(id, principal)
}

// ListPosts returns the principal's posts, newest first.
func (s *PostService) ListPosts(principal string) ([]*models.Post, error) {
	posts, err := s.posts.ListByAuthor(principal)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}
