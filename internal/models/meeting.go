package models

import "time"

// MeetingStatus is the lifecycle state of a handover meeting.
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCancelled MeetingStatus = "cancelled"
	MeetingStatusCompleted MeetingStatus = "completed"
)

// Meeting represents a scheduled handover meeting tied to a chat thread (PostgreSQL)
type Meeting struct {
	ID          string        `json:"id" gorm:"primaryKey;size:36"`
	ChatID      string        `json:"chat_id" gorm:"size:128;index"`
	ScheduledBy string        `json:"scheduled_by" gorm:"size:36"`
	Date        time.Time     `json:"date"`
	Location    string        `json:"location" gorm:"size:200"`
	Status      MeetingStatus `json:"status" gorm:"size:20"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ScheduleMeetingRequest defines the request body for scheduling a meeting
type ScheduleMeetingRequest struct {
	Date     time.Time `json:"date" validate:"required"`
	Location string    `json:"location" validate:"required,min=2,max=200"`
}
