package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/lostfound-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessage_EmptyTextCreatesNothing(t *testing.T) {
	env := newTestEnv(t)

	for _, text := range []string{"", "   ", "\t\n "} {
		_, err := env.chat.PostMessage("chat-1", userA, text, false)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	messages, err := env.chat.Messages("chat-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestPostMessage_Ordering(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 10; i++ {
		sender := userA
		if i%2 == 1 {
			sender = userB
		}
		_, err := env.chat.PostMessage("chat-1", sender, fmt.Sprintf("message %d", i), false)
		require.NoError(t, err)
	}

	messages, err := env.chat.Messages("chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 10)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), m.Message)
		if i > 0 {
			assert.False(t, m.Timestamp.Before(messages[i-1].Timestamp))
		}
	}
}

func TestPostMessage_PresetFlag(t *testing.T) {
	env := newTestEnv(t)

	msg, err := env.chat.PostMessage("chat-1", userB, "I'm available to meet today", true)
	require.NoError(t, err)
	assert.True(t, msg.IsPreset)
	assert.Equal(t, userB.Username, msg.SenderName)
}

func TestScheduleMeeting(t *testing.T) {
	env := newTestEnv(t)

	date := time.Date(2024, 6, 1, 14, 0, 0, 0, time.Local)
	meeting, err := env.chat.ScheduleMeeting("chat-1", userB, date, "Main St Cafe")
	require.NoError(t, err)

	assert.Equal(t, models.MeetingStatusScheduled, meeting.Status)
	assert.Equal(t, userB.ID, meeting.ScheduledBy)
	assert.Equal(t, "Main St Cafe", meeting.Location)

	meetings, err := env.chat.Meetings("chat-1")
	require.NoError(t, err)
	require.Len(t, meetings, 1)

	// The announcement is one preset message naming place and time
	messages, err := env.chat.Messages("chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsPreset)
	assert.Contains(t, messages[0].Message, "Main St Cafe")
	assert.Contains(t, messages[0].Message, "2:00 PM")
	assert.Contains(t, messages[0].Message, "June 1, 2024")
}

func TestCancelMeeting(t *testing.T) {
	env := newTestEnv(t)

	date := time.Date(2024, 6, 1, 14, 0, 0, 0, time.Local)
	meeting, err := env.chat.ScheduleMeeting("chat-1", userB, date, "Main St Cafe")
	require.NoError(t, err)

	cancelled, err := env.chat.CancelMeeting(meeting.ID, userB)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, cancelled.Status)

	// Cancelling again is rejected
	_, err = env.chat.CancelMeeting(meeting.ID, userB)
	assert.ErrorIs(t, err, ErrMeetingNotCancellable)

	// Announcement plus cancellation notice
	messages, err := env.chat.Messages("chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1].Message, "cancelled")
}
