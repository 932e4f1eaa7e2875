package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IDUniqueness(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		post := &models.Post{Title: fmt.Sprintf("Post %d", i), AuthorID: "u1"}
		require.NoError(t, s.CreatePost(ctx, post))
		require.NotEmpty(t, post.ID)
		assert.False(t, seen[post.ID], "duplicate post id %s", post.ID)
		seen[post.ID] = true
	}

	seen = make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := &models.Notification{UserID: "u1", Type: models.NotificationTypeClaim}
		require.NoError(t, s.CreateNotification(n))
		assert.False(t, seen[n.ID], "duplicate notification id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestMemoryStore_PostOrderingAndDefaults(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &models.Post{Title: "First post", AuthorID: "u1"}
	second := &models.Post{Title: "Second post", AuthorID: "u1"}
	require.NoError(t, s.CreatePost(ctx, first))
	require.NoError(t, s.CreatePost(ctx, second))

	assert.Equal(t, models.PostStatusActive, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	// Newest first
	posts, err := s.GetAllPosts(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second post", posts[0].Title)
	assert.Equal(t, "First post", posts[1].Title)
}

func TestMemoryStore_MessagesChronological(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		msg := &models.ChatMessage{ChatID: "chat-1", SenderID: "u1", Message: fmt.Sprintf("msg %d", i)}
		require.NoError(t, s.CreateMessage(msg))
	}
	// A message for another thread must not leak in
	require.NoError(t, s.CreateMessage(&models.ChatMessage{ChatID: "chat-2", SenderID: "u2", Message: "other"}))

	messages, err := s.GetMessagesByChatID("chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 5)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("msg %d", i), m.Message)
		if i > 0 {
			assert.False(t, m.Timestamp.Before(messages[i-1].Timestamp))
		}
	}
}

func TestMemoryStore_UpdateMissingRecord(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.UpdatePostStatus(ctx, "missing", models.PostStatusArchived)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = s.UpdateClaimStatus("missing", models.ClaimStatusApproved)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = s.MarkAsRead("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = s.GetPostByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryStore_UpdateRefreshesUpdatedAt(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	post := &models.Post{Title: "Post", AuthorID: "u1"}
	require.NoError(t, s.CreatePost(ctx, post))

	require.NoError(t, s.UpdatePostStatus(ctx, post.ID, models.PostStatusArchived))

	got, err := s.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusArchived, got.Status)
	assert.False(t, got.UpdatedAt.Before(post.UpdatedAt))
}

func TestMemoryStore_Counters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	post := &models.Post{Title: "Post", AuthorID: "u1"}
	require.NoError(t, s.CreatePost(ctx, post))

	require.NoError(t, s.IncrementLikes(ctx, post.ID))
	require.NoError(t, s.IncrementLikes(ctx, post.ID))
	require.NoError(t, s.IncrementReports(ctx, post.ID))

	got, err := s.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)
	assert.Equal(t, 1, got.Reports)
}

func TestMemoryStore_NotificationPagination(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 25; i++ {
		require.NoError(t, s.CreateNotification(&models.Notification{
			UserID: "u1",
			Type:   models.NotificationTypeClaim,
			Title:  fmt.Sprintf("n%d", i),
		}))
	}

	page1, total, err := s.GetByUserID("u1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, page1, 10)
	// Newest first
	assert.Equal(t, "n24", page1[0].Title)

	page3, _, err := s.GetByUserID("u1", 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3, 5)

	empty, _, err := s.GetByUserID("u1", 4, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
