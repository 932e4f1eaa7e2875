package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/models"
	"gorm.io/gorm"
)

// MeetingRepository defines the interface for meeting data operations
type MeetingRepository interface {
	CreateMeeting(meeting *models.Meeting) error
	GetMeetingByID(id string) (*models.Meeting, error)
	GetMeetingsByChatID(chatID string) ([]models.Meeting, error)
	UpdateMeetingStatus(id string, status models.MeetingStatus) error
}

// PostgresMeetingRepository implements MeetingRepository for PostgreSQL
type PostgresMeetingRepository struct {
	db *gorm.DB
}

// NewPostgresMeetingRepository creates a new PostgresMeetingRepository
func NewPostgresMeetingRepository(db *gorm.DB) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{db: db}
}

// CreateMeeting inserts a new meeting with a fresh id
func (r *PostgresMeetingRepository) CreateMeeting(meeting *models.Meeting) error {
	meeting.ID = uuid.NewString()
	meeting.CreatedAt = time.Now()
	return r.db.Create(meeting).Error
}

// GetMeetingByID retrieves a meeting by ID
func (r *PostgresMeetingRepository) GetMeetingByID(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// GetMeetingsByChatID retrieves a thread's meetings in creation order
func (r *PostgresMeetingRepository) GetMeetingsByChatID(chatID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&meetings).Error
	return meetings, err
}

// UpdateMeetingStatus sets the lifecycle status of a meeting
func (r *PostgresMeetingRepository) UpdateMeetingStatus(id string, status models.MeetingStatus) error {
	tx := r.db.Model(&models.Meeting{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
