package services

import (
	"testing"

	"blogd/app/models"
	"blogd/app/repositories"
	"blogd/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() map[string]interface{} {
	return map[string]interface{}{"blocks": []interface{}{"text"}}
}

func TestSavePost(t *testing.T) {
	repo := mock.NewPostRepository()
	svc := NewPostService(repo)

	t.Run("stamps author and created_at server-side", func(t *testing.T) {
		post := &models.Post{ID: "p1", Title: "Hello", Content: payload(), Status: models.StatusDraft}
		// Whatever the client claims is overwritten.
		post.Author = "mallory"

		err := svc.SavePost(post, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", post.Author)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("defaults status to draft", func(t *testing.T) {
		post := &models.Post{ID: "p2", Title: "No status", Content: payload()}
		require.NoError(t, svc.SavePost(post, "alice"))
		assert.Equal(t, models.StatusDraft, post.Status)
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		err := svc.SavePost(&models.Post{Title: "no id", Content: payload()}, "alice")
		assert.Error(t, err)
	})

	t.Run("surfaces ownership conflicts", func(t *testing.T) {
		post := &models.Post{ID: "p1", Title: "Takeover", Content: payload(), Status: models.StatusDraft}
		err := svc.SavePost(post, "bob")
		assert.ErrorIs(t, err, repositories.ErrNotFoundOrUnauthorized)
	})
}

func TestPatchPost(t *testing.T) {
	repo := mock.NewPostRepository()
	svc := NewPostService(repo)

	t.Run("empty id rejected", func(t *testing.T) {
		err := svc.PatchPost("", &models.PostPatch{}, "alice")
		assert.Error(t, err)
	})

	t.Run("creates a draft for an unknown id", func(t *testing.T) {
		title := "autosaved"
		require.NoError(t, svc.PatchPost("fresh", &models.PostPatch{Title: &title}, "alice"))

		post, err := repo.GetByID("fresh")
		require.NoError(t, err)
		assert.Equal(t, "alice", post.Author)
		assert.Equal(t, models.StatusDraft, post.Status)
		assert.Equal(t, "autosaved", post.Title)
	})
}

func TestListPosts(t *testing.T) {
	repo := mock.NewPostRepository()
	svc := NewPostService(repo)

	t.Run("never nil, never another author's posts", func(t *testing.T) {
		posts, err := svc.ListPosts("alice")
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)

		require.NoError(t, svc.SavePost(&models.Post{ID: "a", Title: "A", Content: payload()}, "alice"))
		require.NoError(t, svc.SavePost(&models.Post{ID: "b", Title: "B", Content: payload()}, "bob"))

		posts, err = svc.ListPosts("alice")
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "a", posts[0].ID)
	})
}
