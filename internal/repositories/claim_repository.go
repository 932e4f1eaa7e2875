package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/models"
	"gorm.io/gorm"
)

// ClaimRepository defines the interface for claim data operations
type ClaimRepository interface {
	CreateClaim(claim *models.Claim) error
	GetClaimByID(id string) (*models.Claim, error)
	GetClaimsByClaimantID(claimantID string) ([]models.Claim, error)
	GetClaimsByPostID(postID string) ([]models.Claim, error)
	UpdateClaimStatus(id string, status models.ClaimStatus) error
}

// PostgresClaimRepository implements ClaimRepository for PostgreSQL
type PostgresClaimRepository struct {
	db *gorm.DB
}

// NewPostgresClaimRepository creates a new PostgresClaimRepository
func NewPostgresClaimRepository(db *gorm.DB) *PostgresClaimRepository {
	return &PostgresClaimRepository{db: db}
}

// CreateClaim inserts a new claim with a fresh id and timestamps
func (r *PostgresClaimRepository) CreateClaim(claim *models.Claim) error {
	claim.ID = uuid.NewString()
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = claim.CreatedAt
	return r.db.Create(claim).Error
}

// GetClaimByID retrieves a claim by ID
func (r *PostgresClaimRepository) GetClaimByID(id string) (*models.Claim, error) {
	var claim models.Claim
	if err := r.db.First(&claim, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// GetClaimsByClaimantID retrieves all claims submitted by a user, newest first
func (r *PostgresClaimRepository) GetClaimsByClaimantID(claimantID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("claimant_id = ?", claimantID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// GetClaimsByPostID retrieves all claims against a post, newest first
func (r *PostgresClaimRepository) GetClaimsByPostID(postID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// UpdateClaimStatus sets the lifecycle status of a claim and refreshes updated_at
func (r *PostgresClaimRepository) UpdateClaimStatus(id string, status models.ClaimStatus) error {
	tx := r.db.Model(&models.Claim{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
