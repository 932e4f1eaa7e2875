package services

import "errors"

var (
	// ErrSelfClaim is returned when a user tries to claim their own post.
	ErrSelfClaim = errors.New("cannot claim your own post")

	// ErrPostNotClaimable is returned when a claim targets a post that is
	// no longer open for claims.
	ErrPostNotClaimable = errors.New("post is not open for claims")

	// ErrInvalidPostTransition is returned when a post status change is not
	// an allowed edge of the post state machine.
	ErrInvalidPostTransition = errors.New("invalid post status transition")

	// ErrInvalidClaimTransition is returned when a claim status change is
	// not an allowed edge of the claim state machine.
	ErrInvalidClaimTransition = errors.New("invalid claim status transition")

	// ErrEmptyMessage is returned when a chat message is empty after
	// trimming whitespace. No record is created.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrMeetingNotCancellable is returned when cancellation targets a
	// meeting that is not in the scheduled state.
	ErrMeetingNotCancellable = errors.New("meeting is not cancellable")
)
