package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
)

// claimTransitions is the set of allowed claim status edges. Completed and
// rejected are terminal.
var claimTransitions = map[models.ClaimStatus][]models.ClaimStatus{
	models.ClaimStatusPending:   {models.ClaimStatusApproved, models.ClaimStatusRejected},
	models.ClaimStatusApproved:  {models.ClaimStatusReturning},
	models.ClaimStatusReturning: {models.ClaimStatusCompleted},
}

func claimTransitionAllowed(from, to models.ClaimStatus) bool {
	for _, next := range claimTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ClaimService is the single entry point for the claim lifecycle: submitting
// a claim against a post and moving it through its states. Submission is one
// function so the claim, the seeded chat message and the two notifications
// never appear partially.
type ClaimService struct {
	posts         repositories.PostRepository
	claims        repositories.ClaimRepository
	messages      repositories.ChatMessageRepository
	notifications *NotificationService
	moderation    *ModerationService
}

// NewClaimService creates a new ClaimService. Post status writes go through
// moderation so claim side effects obey the same transition table as direct
// moderation calls.
func NewClaimService(postRepo repositories.PostRepository, claimRepo repositories.ClaimRepository, messageRepo repositories.ChatMessageRepository, notifications *NotificationService, moderation *ModerationService) *ClaimService {
	return &ClaimService{
		posts:         postRepo,
		claims:        claimRepo,
		messages:      messageRepo,
		notifications: notifications,
		moderation:    moderation,
	}
}

// SubmitClaim files an ownership claim against a post. It creates the claim
// in pending state, opens the chat thread with the claimant's rationale and
// notifies both the post author and the claimant.
func (s *ClaimService) SubmitClaim(ctx context.Context, claimant *models.User, req models.SubmitClaimRequest) (*models.Claim, error) {
	post, err := s.posts.GetPostByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID == claimant.ID {
		return nil, ErrSelfClaim
	}
	if post.Status != models.PostStatusActive {
		return nil, ErrPostNotClaimable
	}

	chatID := fmt.Sprintf("claim-%s-%s-%s", post.ID, claimant.ID, uuid.NewString())

	claim := &models.Claim{
		PostID:           post.ID,
		ClaimantID:       claimant.ID,
		ClaimantName:     claimant.Username,
		Status:           models.ClaimStatusPending,
		Message:          req.Message,
		ProofImages:      req.ProofImages,
		ProofDescription: req.ProofDescription,
		ContactMethod:    req.ContactMethod,
		AdditionalInfo:   req.AdditionalInfo,
		ChatID:           chatID,
	}
	if err := s.claims.CreateClaim(claim); err != nil {
		return nil, err
	}

	seed := &models.ChatMessage{
		ChatID:     chatID,
		SenderID:   claimant.ID,
		SenderName: claimant.Username,
		Message:    fmt.Sprintf("Hi! I believe this %s item belongs to me. %s", post.Type, req.Message),
	}
	if err := s.messages.CreateMessage(seed); err != nil {
		return nil, err
	}

	if _, err := s.notifications.Notify(post.AuthorID, models.NotificationTypeClaim,
		"New Claim Received",
		fmt.Sprintf("%s has claimed your %s item %q.", claimant.Username, post.Type, post.Title),
		post.ID); err != nil {
		return nil, err
	}
	if _, err := s.notifications.Notify(claimant.ID, models.NotificationTypeClaim,
		"Claim Submitted",
		fmt.Sprintf("Your claim for %q has been submitted and is being reviewed.", post.Title),
		post.ID); err != nil {
		return nil, err
	}

	return claim, nil
}

// postStatusFor maps a claim status to the post status it drags the post
// into. Rejection leaves the post alone.
func postStatusFor(status models.ClaimStatus) (models.PostStatus, bool) {
	switch status {
	case models.ClaimStatusApproved:
		return models.PostStatusClaimed, true
	case models.ClaimStatusReturning:
		return models.PostStatusReturning, true
	case models.ClaimStatusCompleted:
		return models.PostStatusReturned, true
	}
	return "", false
}

// UpdateClaimStatus moves a claim along its state machine and keeps the post
// in step: approval marks the post claimed and records the authoritative
// claim, returning and completion move the post with it. Both machines must
// accept their edge before anything is written, so a post that was archived
// mid-claim, or already claimed by a competing approval, stops the claim
// transition with ErrInvalidPostTransition.
func (s *ClaimService) UpdateClaimStatus(ctx context.Context, id string, status models.ClaimStatus) (*models.Claim, error) {
	claim, err := s.claims.GetClaimByID(id)
	if err != nil {
		return nil, err
	}

	if !claimTransitionAllowed(claim.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidClaimTransition, claim.Status, status)
	}

	post, err := s.posts.GetPostByID(ctx, claim.PostID)
	if err != nil {
		return nil, err
	}

	postStatus, movesPost := postStatusFor(status)
	if movesPost && !postTransitionAllowed(post.Status, postStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidPostTransition, post.Status, postStatus)
	}

	if err := s.claims.UpdateClaimStatus(id, status); err != nil {
		return nil, err
	}
	claim.Status = status

	if movesPost {
		if _, err := s.moderation.UpdateStatus(ctx, post.ID, postStatus); err != nil {
			return nil, err
		}
	}

	switch status {
	case models.ClaimStatusApproved:
		if err := s.posts.AttachClaim(ctx, post.ID, claim.ID); err != nil {
			return nil, err
		}
		if _, err := s.notifications.Notify(claim.ClaimantID, models.NotificationTypeStatusUpdate,
			"Claim Approved",
			fmt.Sprintf("Your claim for %q has been approved. Open the chat to arrange the return.", post.Title),
			post.ID); err != nil {
			return nil, err
		}

	case models.ClaimStatusRejected:
		if _, err := s.notifications.Notify(claim.ClaimantID, models.NotificationTypeStatusUpdate,
			"Claim Rejected",
			fmt.Sprintf("Your claim for %q was not approved.", post.Title),
			post.ID); err != nil {
			return nil, err
		}

	case models.ClaimStatusCompleted:
		if _, err := s.notifications.Notify(post.AuthorID, models.NotificationTypeStatusUpdate,
			"Item Returned",
			fmt.Sprintf("The return of %q has been completed.", post.Title),
			post.ID); err != nil {
			return nil, err
		}
	}

	return claim, nil
}
