package models

import "time"

// NotificationType categorizes what a notification is about.
type NotificationType string

const (
	NotificationTypeClaim        NotificationType = "claim"
	NotificationTypeMessage      NotificationType = "message"
	NotificationTypeMeeting      NotificationType = "meeting"
	NotificationTypeStatusUpdate NotificationType = "status_update"
)

// Notification represents a user notification (PostgreSQL)
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;size:36"`
	UserID    string           `json:"user_id" gorm:"size:36;index"`
	Type      NotificationType `json:"type" gorm:"size:30;index"`
	Title     string           `json:"title" gorm:"size:200"`
	Message   string           `json:"message" gorm:"type:text"`
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
	RelatedID string           `json:"related_id,omitempty" gorm:"size:64"` // conventionally a post id
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
}
