package mock

import (
	"sort"
	"time"

	"blogd/app/models"
	"blogd/app/repositories"
)

// UserRepository is an in-memory UserRepository for tests.
type UserRepository struct {
	Users map[string]*models.User
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{Users: make(map[string]*models.User)}
}

func (m *UserRepository) Create(user *models.User) error {
	if _, exists := m.Users[user.Username]; exists {
		return repositories.ErrDuplicateUser
	}
	m.Users[user.Username] = user
	return nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	user, exists := m.Users[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

// PostRepository is an in-memory PostRepository for tests. It mirrors the
// badger implementation's ownership rules.
type PostRepository struct {
	Posts map[string]*models.Post
}

// NewPostRepository creates a new in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{Posts: make(map[string]*models.Post)}
}

func (m *PostRepository) Upsert(post *models.Post) error {
	if existing, exists := m.Posts[post.ID]; exists && existing.Author != post.Author {
		return repositories.ErrNotFoundOrUnauthorized
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *PostRepository) Patch(id string, patch *models.PostPatch, principal string) error {
	now := time.Now()
	post, exists := m.Posts[id]
	if exists {
		if post.Author != principal {
			return repositories.ErrNotFoundOrUnauthorized
		}
	} else {
		post = &models.Post{
			ID:        id,
			Status:    models.StatusDraft,
			Author:    principal,
			CreatedAt: now,
		}
		m.Posts[id] = post
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = patch.Content
	}
	post.UpdatedAt = &now
	return nil
}

func (m *PostRepository) Publish(id string, principal string) error {
	post, exists := m.Posts[id]
	if !exists || post.Author != principal {
		return repositories.ErrNotFoundOrUnauthorized
	}
	now := time.Now()
	post.Status = models.StatusPublished
	post.PublishedAt = &now
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	post, exists := m.Posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) ListByAuthor(author string) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.Posts {
		if post.Author == author {
			posts = append(posts, post)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > repositories.ListLimit {
		posts = posts[:repositories.ListLimit]
	}
	return posts, nil
}
