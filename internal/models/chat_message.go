package models

import "time"

// ChatMessage represents a single message in a claim chat thread (PostgreSQL)
type ChatMessage struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	ChatID     string    `json:"chat_id" gorm:"size:128;index"`
	SenderID   string    `json:"sender_id" gorm:"size:36;index"`
	SenderName string    `json:"sender_name" gorm:"size:100"`
	Message    string    `json:"message" gorm:"type:text"`
	IsPreset   bool      `json:"is_preset" gorm:"default:false"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
}

// PostChatMessageRequest defines the request body for sending a chat message
type PostChatMessageRequest struct {
	Message  string `json:"message" validate:"required,max=1000"`
	IsPreset bool   `json:"is_preset,omitempty"`
}
