package models

import "time"

// ClaimStatus is the lifecycle state of an ownership claim.
type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusReturning ClaimStatus = "returning"
	ClaimStatusCompleted ClaimStatus = "completed"
	ClaimStatusRejected  ClaimStatus = "rejected"
)

// Claim represents an ownership claim on a post (PostgreSQL)
type Claim struct {
	ID               string      `json:"id" gorm:"primaryKey;size:36"`
	PostID           string      `json:"post_id" gorm:"size:64;index"`
	ClaimantID       string      `json:"claimant_id" gorm:"size:36;index"`
	ClaimantName     string      `json:"claimant_name" gorm:"size:100"`
	Status           ClaimStatus `json:"status" gorm:"size:20;index"`
	Message          string      `json:"message" gorm:"type:text"`
	ProofImages      []string    `json:"proof_images,omitempty" gorm:"serializer:json"`
	ProofDescription string      `json:"proof_description,omitempty" gorm:"type:text"`
	ContactMethod    string      `json:"contact_method,omitempty" gorm:"size:50"`
	AdditionalInfo   string      `json:"additional_info,omitempty" gorm:"type:text"`
	ChatID           string      `json:"chat_id" gorm:"size:128;index"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// SubmitClaimRequest defines the request body for claiming a post
type SubmitClaimRequest struct {
	PostID           string   `json:"post_id" validate:"required"`
	Message          string   `json:"message" validate:"required,min=10,max=1000"`
	ProofImages      []string `json:"proof_images,omitempty" validate:"omitempty,max=3,dive,url"`
	ProofDescription string   `json:"proof_description,omitempty" validate:"omitempty,max=1000"`
	ContactMethod    string   `json:"contact_method,omitempty" validate:"omitempty,oneof=chat phone email"`
	AdditionalInfo   string   `json:"additional_info,omitempty" validate:"omitempty,max=1000"`
}

// UpdateClaimStatusRequest defines the request body for a claim status change
type UpdateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved returning completed rejected"`
}
