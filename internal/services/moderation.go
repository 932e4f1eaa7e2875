package services

import (
	"context"
	"fmt"

	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
)

// postTransitions is the set of allowed post status edges. Returned and
// archived are terminal.
var postTransitions = map[models.PostStatus][]models.PostStatus{
	models.PostStatusActive:    {models.PostStatusClaimed, models.PostStatusArchived},
	models.PostStatusClaimed:   {models.PostStatusReturning, models.PostStatusArchived},
	models.PostStatusReturning: {models.PostStatusReturned, models.PostStatusArchived},
}

func postTransitionAllowed(from, to models.PostStatus) bool {
	for _, next := range postTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ModerationService drives post status transitions, whether self-service by
// the author or administrative.
type ModerationService struct {
	posts         repositories.PostRepository
	notifications *NotificationService
}

// NewModerationService creates a new ModerationService
func NewModerationService(postRepo repositories.PostRepository, notifications *NotificationService) *ModerationService {
	return &ModerationService{
		posts:         postRepo,
		notifications: notifications,
	}
}

// UpdateStatus moves a post along its state machine. Archiving an already
// archived post is accepted as a no-op on state.
func (s *ModerationService) UpdateStatus(ctx context.Context, postID string, status models.PostStatus) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Status == models.PostStatusArchived && status == models.PostStatusArchived {
		return post, nil
	}
	if !postTransitionAllowed(post.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidPostTransition, post.Status, status)
	}

	if err := s.posts.UpdatePostStatus(ctx, postID, status); err != nil {
		return nil, err
	}
	post.Status = status
	return post, nil
}

// Archive moves a post to the archived terminal state. No notification is
// emitted here; callers with a distinct approve/reject message emit their own.
func (s *ModerationService) Archive(ctx context.Context, postID string) (*models.Post, error) {
	return s.UpdateStatus(ctx, postID, models.PostStatusArchived)
}

// MarkReturned moves a post to the returned terminal success state
func (s *ModerationService) MarkReturned(ctx context.Context, postID string) (*models.Post, error) {
	return s.UpdateStatus(ctx, postID, models.PostStatusReturned)
}

// Approve notifies the author that their post passed review. The status is
// left untouched: active already means visible.
func (s *ModerationService) Approve(ctx context.Context, postID string) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	_, err = s.notifications.Notify(post.AuthorID, models.NotificationTypeStatusUpdate,
		"Post Approved",
		"Your post has been reviewed and approved by our team.",
		post.ID)
	return err
}

// Reject archives a post and notifies the author
func (s *ModerationService) Reject(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.Archive(ctx, postID)
	if err != nil {
		return nil, err
	}
	if _, err := s.notifications.Notify(post.AuthorID, models.NotificationTypeStatusUpdate,
		"Post Rejected",
		"Your post has been reviewed and requires modifications.",
		post.ID); err != nil {
		return nil, err
	}
	return post, nil
}
