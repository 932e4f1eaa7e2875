// Package store provides an in-memory implementation of every repository
// interface. It is the default storage driver and the one the service tests
// run against: each MemoryStore is fully isolated, so tests get a fresh
// store per test with no external dependencies.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
)

// MemoryStore holds every collection in ordered slices. Posts, claims and
// notifications are kept newest-first; chat messages and meetings are kept
// in insertion (chronological) order.
type MemoryStore struct {
	mu            sync.RWMutex
	users         []models.User
	posts         []models.Post
	claims        []models.Claim
	messages      []models.ChatMessage
	meetings      []models.Meeting
	notifications []models.Notification
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Repositories exposes the store as one implementation of every repository
func (s *MemoryStore) Repositories() repositories.Repositories {
	return repositories.Repositories{
		Users:         s,
		Posts:         s,
		Claims:        s,
		ChatMessages:  s,
		Meetings:      s,
		Notifications: s,
	}
}

// --- PostRepository ---

// CreatePost prepends a new post with a fresh id, timestamps and active status
func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = uuid.NewString()
	post.Status = models.PostStatusActive
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	s.posts = append([]models.Post{*post}, s.posts...)
	return nil
}

// GetPostByID retrieves a post by ID
func (s *MemoryStore) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetAllPosts retrieves posts with pagination, newest first
func (s *MemoryStore) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginatePosts(s.posts, func(models.Post) bool { return true }, skip, limit), nil
}

// GetPostsByAuthorID retrieves posts created by a specific user, newest first
func (s *MemoryStore) GetPostsByAuthorID(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginatePosts(s.posts, func(p models.Post) bool { return p.AuthorID == authorID }, skip, limit), nil
}

// GetPostsByStatus retrieves posts in a given lifecycle state, newest first
func (s *MemoryStore) GetPostsByStatus(ctx context.Context, status models.PostStatus, skip, limit int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginatePosts(s.posts, func(p models.Post) bool { return p.Status == status }, skip, limit), nil
}

func paginatePosts(posts []models.Post, match func(models.Post) bool, skip, limit int64) []models.Post {
	out := make([]models.Post, 0)
	var seen int64
	for _, p := range posts {
		if !match(p) {
			continue
		}
		seen++
		if seen <= skip {
			continue
		}
		out = append(out, p)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out
}

// UpdatePostStatus sets the lifecycle status of a post and refreshes UpdatedAt
func (s *MemoryStore) UpdatePostStatus(ctx context.Context, id string, status models.PostStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Status = status
			s.posts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrNotFound
}

// AttachClaim links the authoritative claim to a post
func (s *MemoryStore) AttachClaim(ctx context.Context, id, claimID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ClaimID = claimID
			s.posts[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrNotFound
}

// IncrementLikes increments the likes counter of a post
func (s *MemoryStore) IncrementLikes(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes++
			return nil
		}
	}
	return repositories.ErrNotFound
}

// IncrementReports increments the reports counter of a post
func (s *MemoryStore) IncrementReports(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Reports++
			return nil
		}
	}
	return repositories.ErrNotFound
}

// --- ClaimRepository ---

// CreateClaim prepends a new claim with a fresh id and timestamps
func (s *MemoryStore) CreateClaim(claim *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim.ID = uuid.NewString()
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = claim.CreatedAt
	s.claims = append([]models.Claim{*claim}, s.claims...)
	return nil
}

// GetClaimByID retrieves a claim by ID
func (s *MemoryStore) GetClaimByID(id string) (*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.claims {
		if s.claims[i].ID == id {
			claim := s.claims[i]
			return &claim, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetClaimsByClaimantID retrieves all claims submitted by a user, newest first
func (s *MemoryStore) GetClaimsByClaimantID(claimantID string) ([]models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Claim, 0)
	for _, c := range s.claims {
		if c.ClaimantID == claimantID {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetClaimsByPostID retrieves all claims against a post, newest first
func (s *MemoryStore) GetClaimsByPostID(postID string) ([]models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Claim, 0)
	for _, c := range s.claims {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateClaimStatus sets the lifecycle status of a claim and refreshes UpdatedAt
func (s *MemoryStore) UpdateClaimStatus(id string, status models.ClaimStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.claims {
		if s.claims[i].ID == id {
			s.claims[i].Status = status
			s.claims[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrNotFound
}

// --- ChatMessageRepository ---

// CreateMessage appends a new message with a fresh id and timestamp
func (s *MemoryStore) CreateMessage(message *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = uuid.NewString()
	message.Timestamp = time.Now()
	s.messages = append(s.messages, *message)
	return nil
}

// GetMessagesByChatID retrieves a thread's messages in chronological order
func (s *MemoryStore) GetMessagesByChatID(chatID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ChatMessage, 0)
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

// --- MeetingRepository ---

// CreateMeeting appends a new meeting with a fresh id
func (s *MemoryStore) CreateMeeting(meeting *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting.ID = uuid.NewString()
	meeting.CreatedAt = time.Now()
	s.meetings = append(s.meetings, *meeting)
	return nil
}

// GetMeetingByID retrieves a meeting by ID
func (s *MemoryStore) GetMeetingByID(id string) (*models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.meetings {
		if s.meetings[i].ID == id {
			meeting := s.meetings[i]
			return &meeting, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetMeetingsByChatID retrieves a thread's meetings in creation order
func (s *MemoryStore) GetMeetingsByChatID(chatID string) ([]models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Meeting, 0)
	for _, m := range s.meetings {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

// UpdateMeetingStatus sets the lifecycle status of a meeting
func (s *MemoryStore) UpdateMeetingStatus(id string, status models.MeetingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].ID == id {
			s.meetings[i].Status = status
			return nil
		}
	}
	return repositories.ErrNotFound
}

// --- NotificationRepository ---

// CreateNotification prepends a new notification, unread
func (s *MemoryStore) CreateNotification(notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = uuid.NewString()
	notification.IsRead = false
	notification.CreatedAt = time.Now()
	s.notifications = append([]models.Notification{*notification}, s.notifications...)
	return nil
}

// GetByUserID retrieves a user's notifications, newest first, paginated
func (s *MemoryStore) GetByUserID(userID string, page, limit int) ([]models.Notification, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			all = append(all, n)
		}
	}

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []models.Notification{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// GetUnreadCount counts a user's unread notifications
func (s *MemoryStore) GetUnreadCount(userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAsRead marks one notification read; marking an already-read one is a no-op
func (s *MemoryStore) MarkAsRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

// MarkAllAsRead marks every unread notification of a user read
func (s *MemoryStore) MarkAllAsRead(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

// --- UserRepository ---

// CreateUser appends a new user with a fresh id
func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	if user.AccountType == "" {
		user.AccountType = models.AccountTypeUser
	}
	s.users = append(s.users, *user)
	return nil
}

// GetUserByID retrieves a user by ID
func (s *MemoryStore) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetUserByEmail retrieves a user by email
func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}
