package services

import (
	"testing"

	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_NewestFirst(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notifications.Notify(userA.ID, models.NotificationTypeClaim, "First", "first message", "")
	require.NoError(t, err)
	_, err = env.notifications.Notify(userA.ID, models.NotificationTypeMessage, "Second", "second message", "")
	require.NoError(t, err)

	notifs, total, err := env.notifications.ListForUser(userA.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, notifs, 2)
	assert.Equal(t, "Second", notifs[0].Title)
	assert.Equal(t, "First", notifs[1].Title)
	assert.False(t, notifs[0].IsRead)
}

func TestMarkRead_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	n, err := env.notifications.Notify(userA.ID, models.NotificationTypeClaim, "Title", "message", "")
	require.NoError(t, err)

	require.NoError(t, env.notifications.MarkRead(n.ID))
	count, err := env.notifications.UnreadCount(userA.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Marking again changes nothing
	require.NoError(t, env.notifications.MarkRead(n.ID))
	count, err = env.notifications.UnreadCount(userA.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	notifs, _, err := env.notifications.ListForUser(userA.ID, 1, 10)
	require.NoError(t, err)
	assert.True(t, notifs[0].IsRead)
}

func TestMarkRead_MissingNotification(t *testing.T) {
	env := newTestEnv(t)
	assert.ErrorIs(t, env.notifications.MarkRead("missing"), repositories.ErrNotFound)
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 5; i++ {
		_, err := env.notifications.Notify(userA.ID, models.NotificationTypeClaim, "Title", "message", "")
		require.NoError(t, err)
	}
	// Another user's feed stays untouched
	_, err := env.notifications.Notify(userB.ID, models.NotificationTypeClaim, "Title", "message", "")
	require.NoError(t, err)

	require.NoError(t, env.notifications.MarkAllRead(userA.ID))
	count, err := env.notifications.UnreadCount(userA.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Second pass is a no-op
	require.NoError(t, env.notifications.MarkAllRead(userA.ID))
	count, err = env.notifications.UnreadCount(userA.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = env.notifications.UnreadCount(userB.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
