package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
)

// ChatService handles the append-only message thread between a post author
// and a claimant, plus meeting scheduling as a compound action.
type ChatService struct {
	messages repositories.ChatMessageRepository
	meetings repositories.MeetingRepository
}

// NewChatService creates a new ChatService
func NewChatService(messageRepo repositories.ChatMessageRepository, meetingRepo repositories.MeetingRepository) *ChatService {
	return &ChatService{
		messages: messageRepo,
		meetings: meetingRepo,
	}
}

// PostMessage appends a message to a thread. Text that is empty after
// trimming whitespace creates no record and returns ErrEmptyMessage.
func (s *ChatService) PostMessage(chatID string, sender *models.User, text string, isPreset bool) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := &models.ChatMessage{
		ChatID:     chatID,
		SenderID:   sender.ID,
		SenderName: sender.Username,
		Message:    text,
		IsPreset:   isPreset,
	}
	if err := s.messages.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Messages returns a thread's messages in chronological order
func (s *ChatService) Messages(chatID string) ([]models.ChatMessage, error) {
	return s.messages.GetMessagesByChatID(chatID)
}

// Meetings returns a thread's meetings in creation order
func (s *ChatService) Meetings(chatID string) ([]models.Meeting, error) {
	return s.meetings.GetMeetingsByChatID(chatID)
}

// ScheduleMeeting creates a scheduled meeting and announces it in the thread
// with a preset message. The two writes are one logical action.
func (s *ChatService) ScheduleMeeting(chatID string, scheduler *models.User, date time.Time, location string) (*models.Meeting, error) {
	meeting := &models.Meeting{
		ChatID:      chatID,
		ScheduledBy: scheduler.ID,
		Date:        date,
		Location:    location,
		Status:      models.MeetingStatusScheduled,
	}
	if err := s.meetings.CreateMeeting(meeting); err != nil {
		return nil, err
	}

	announcement := fmt.Sprintf("📅 Meeting scheduled for %s at %s at %s",
		date.Format("January 2, 2006"), date.Format("3:04 PM"), location)
	if _, err := s.PostMessage(chatID, scheduler, announcement, true); err != nil {
		return nil, err
	}

	return meeting, nil
}

// CancelMeeting cancels a scheduled meeting and announces the cancellation
// in the thread. Only scheduled meetings can be cancelled.
func (s *ChatService) CancelMeeting(id string, cancelledBy *models.User) (*models.Meeting, error) {
	meeting, err := s.meetings.GetMeetingByID(id)
	if err != nil {
		return nil, err
	}
	if meeting.Status != models.MeetingStatusScheduled {
		return nil, ErrMeetingNotCancellable
	}

	if err := s.meetings.UpdateMeetingStatus(id, models.MeetingStatusCancelled); err != nil {
		return nil, err
	}
	meeting.Status = models.MeetingStatusCancelled

	announcement := fmt.Sprintf("📅 Meeting on %s at %s has been cancelled",
		meeting.Date.Format("January 2, 2006"), meeting.Location)
	if _, err := s.PostMessage(meeting.ChatID, cancelledBy, announcement, true); err != nil {
		return nil, err
	}

	return meeting, nil
}
