package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/models"
	"gorm.io/gorm"
)

// ChatMessageRepository defines the interface for chat message operations.
// Messages are append-only; there is no update or delete.
type ChatMessageRepository interface {
	CreateMessage(message *models.ChatMessage) error
	GetMessagesByChatID(chatID string) ([]models.ChatMessage, error)
}

// PostgresChatMessageRepository implements ChatMessageRepository for PostgreSQL
type PostgresChatMessageRepository struct {
	db *gorm.DB
}

// NewPostgresChatMessageRepository creates a new PostgresChatMessageRepository
func NewPostgresChatMessageRepository(db *gorm.DB) *PostgresChatMessageRepository {
	return &PostgresChatMessageRepository{db: db}
}

// CreateMessage appends a new message with a fresh id and timestamp
func (r *PostgresChatMessageRepository) CreateMessage(message *models.ChatMessage) error {
	message.ID = uuid.NewString()
	message.Timestamp = time.Now()
	return r.db.Create(message).Error
}

// GetMessagesByChatID retrieves a thread's messages in chronological order
func (r *PostgresChatMessageRepository) GetMessagesByChatID(chatID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("chat_id = ?", chatID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}
