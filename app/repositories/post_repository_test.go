package repositories

import (
	"fmt"
	"testing"
	"time"

	"blogd/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(id, author, title string) *models.Post {
	return &models.Post{
		ID:        id,
		Title:     title,
		Content:   map[string]interface{}{"blocks": []interface{}{map[string]interface{}{"type": "paragraph", "text": "hello"}}},
		Status:    models.StatusDraft,
		Author:    author,
		CreatedAt: time.Now(),
	}
}

func TestPostRepositoryUpsert(t *testing.T) {
	repo := NewBadgerPostRepository(newTestDB(t))

	t.Run("round trip", func(t *testing.T) {
		post := draft("p1", "alice", "First")
		require.NoError(t, repo.Upsert(post))

		got, err := repo.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, post.Title, got.Title)
		assert.Equal(t, post.Content, got.Content)
		assert.Equal(t, post.Status, got.Status)
		assert.Equal(t, post.Author, got.Author)
	})

	t.Run("same author replaces", func(t *testing.T) {
		require.NoError(t, repo.Upsert(draft("p1", "alice", "First, revised")))

		got, err := repo.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, "First, revised", got.Title)
	})

	t.Run("other author cannot take over the id", func(t *testing.T) {
		err := repo.Upsert(draft("p1", "bob", "Hijack"))
		assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)

		got, err := repo.GetByID("p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Author)
		assert.Equal(t, "First, revised", got.Title)
	})
}

func TestPostRepositoryPatch(t *testing.T) {
	repo := NewBadgerPostRepository(newTestDB(t))

	t.Run("patch of unknown id creates a draft", func(t *testing.T) {
		title := "x"
		err := repo.Patch("ghost", &models.PostPatch{Title: &title}, "alice")
		require.NoError(t, err)

		got, err := repo.GetByID("ghost")
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, got.Status)
		assert.Equal(t, "alice", got.Author)
		assert.Equal(t, "x", got.Title)
		assert.False(t, got.CreatedAt.IsZero())
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("merges only supplied fields", func(t *testing.T) {
		require.NoError(t, repo.Upsert(draft("p2", "alice", "Original")))

		content := map[string]interface{}{"blocks": []interface{}{"rewritten"}}
		require.NoError(t, repo.Patch("p2", &models.PostPatch{Content: content}, "alice"))

		got, err := repo.GetByID("p2")
		require.NoError(t, err)
		assert.Equal(t, "Original", got.Title)
		assert.Equal(t, content, got.Content)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("other author cannot patch an existing post", func(t *testing.T) {
		title := "defaced"
		err := repo.Patch("p2", &models.PostPatch{Title: &title}, "bob")
		assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)

		got, err := repo.GetByID("p2")
		require.NoError(t, err)
		assert.Equal(t, "Original", got.Title)
	})
}

func TestPostRepositoryPublish(t *testing.T) {
	repo := NewBadgerPostRepository(newTestDB(t))
	require.NoError(t, repo.Upsert(draft("p3", "alice", "To publish")))

	t.Run("owner publishes", func(t *testing.T) {
		require.NoError(t, repo.Publish("p3", "alice"))

		got, err := repo.GetByID("p3")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, got.Status)
		assert.NotNil(t, got.PublishedAt)
	})

	t.Run("non-owner gets the merged failure and status is unchanged", func(t *testing.T) {
		require.NoError(t, repo.Upsert(draft("p4", "alice", "Private")))

		err := repo.Publish("p4", "bob")
		assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)

		got, err := repo.GetByID("p4")
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, got.Status)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("unknown id is indistinguishable from unauthorized", func(t *testing.T) {
		err := repo.Publish("missing", "alice")
		assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)
	})
}

func TestPostRepositoryListByAuthor(t *testing.T) {
	repo := NewBadgerPostRepository(newTestDB(t))

	t.Run("only the author's posts", func(t *testing.T) {
		require.NoError(t, repo.Upsert(draft("a1", "alice", "A1")))
		require.NoError(t, repo.Upsert(draft("a2", "alice", "A2")))
		require.NoError(t, repo.Upsert(draft("b1", "bob", "B1")))

		posts, err := repo.ListByAuthor("alice")
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, "alice", p.Author)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		older := draft("old", "carol", "Old")
		older.CreatedAt = time.Now().Add(-time.Hour)
		newer := draft("new", "carol", "New")
		require.NoError(t, repo.Upsert(older))
		require.NoError(t, repo.Upsert(newer))

		posts, err := repo.ListByAuthor("carol")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "new", posts[0].ID)
		assert.Equal(t, "old", posts[1].ID)
	})

	t.Run("capped at the list limit", func(t *testing.T) {
		for i := 0; i < ListLimit+10; i++ {
			require.NoError(t, repo.Upsert(draft(fmt.Sprintf("d%03d", i), "dave", "D")))
		}

		posts, err := repo.ListByAuthor("dave")
		require.NoError(t, err)
		assert.Len(t, posts, ListLimit)
	})

	t.Run("empty result for unknown author", func(t *testing.T) {
		posts, err := repo.ListByAuthor("nobody")
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})
}
