package services

import (
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
)

// NotificationService is the per-user notification feed. Every other service
// fans out through it rather than touching the repository directly.
type NotificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifRepo}
}

// Notify appends an unread notification targeted at one user
func (s *NotificationService) Notify(userID string, notifType models.NotificationType, title, message, relatedID string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}
	if err := s.notifications.CreateNotification(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkRead marks one notification read. Marking an already-read
// notification leaves it read.
func (s *NotificationService) MarkRead(id string) error {
	return s.notifications.MarkAsRead(id)
}

// MarkAllRead marks every unread notification of a user read
func (s *NotificationService) MarkAllRead(userID string) error {
	return s.notifications.MarkAllAsRead(userID)
}

// ListForUser returns a user's notifications, newest first
func (s *NotificationService) ListForUser(userID string, page, limit int) ([]models.Notification, int64, error) {
	return s.notifications.GetByUserID(userID, page, limit)
}

// UnreadCount counts a user's unread notifications
func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	return s.notifications.GetUnreadCount(userID)
}
