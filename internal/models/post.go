package models

import "time"

// PostStatus is the lifecycle state of a lost/found post.
type PostStatus string

const (
	PostStatusActive    PostStatus = "active"
	PostStatusClaimed   PostStatus = "claimed"
	PostStatusReturning PostStatus = "returning"
	PostStatusReturned  PostStatus = "returned"
	PostStatusArchived  PostStatus = "archived"
)

// PostType distinguishes lost-item posts from found-item posts.
type PostType string

const (
	PostTypeLost  PostType = "lost"
	PostTypeFound PostType = "found"
)

// Post represents a lost or found item listing stored in MongoDB
type Post struct {
	ID             string     `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string     `json:"title" bson:"title"`
	Category       string     `json:"category" bson:"category"`
	Type           PostType   `json:"type" bson:"type"`
	Description    string     `json:"description" bson:"description"`
	PrivateDetails string     `json:"private_details,omitempty" bson:"private_details"` // visible to the author and admins only
	Location       string     `json:"location" bson:"location"`
	Photos         []string   `json:"photos,omitempty" bson:"photos,omitempty"`
	AuthorID       string     `json:"author_id" bson:"author_id"`
	AuthorName     string     `json:"author_name" bson:"author_name"`
	Status         PostStatus `json:"status" bson:"status"`
	Likes          int        `json:"likes" bson:"likes"`
	Reports        int        `json:"reports" bson:"reports"`
	ClaimID        string     `json:"claim_id,omitempty" bson:"claim_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

// Redacted returns a copy of the post safe to show to viewers who are
// neither the author nor an admin.
func (p Post) Redacted() Post {
	p.PrivateDetails = ""
	return p
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=100"`
	Category       string   `json:"category" validate:"required,min=2,max=50"`
	Type           string   `json:"type" validate:"required,oneof=lost found"`
	Description    string   `json:"description" validate:"required,min=10,max=2000"`
	PrivateDetails string   `json:"private_details,omitempty" validate:"omitempty,max=2000"`
	Location       string   `json:"location" validate:"required,min=2,max=200"`
	Photos         []string `json:"photos,omitempty" validate:"omitempty,max=5,dive,url"`
}

// UpdatePostStatusRequest defines the request body for a post status change
type UpdatePostStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active claimed returning returned archived"`
}
