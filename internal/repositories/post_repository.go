package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/lostfound-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetAllPosts(ctx context.Context, skip, limit int64) ([]models.Post, error)
	GetPostsByAuthorID(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error)
	GetPostsByStatus(ctx context.Context, status models.PostStatus, skip, limit int64) ([]models.Post, error)
	UpdatePostStatus(ctx context.Context, id string, status models.PostStatus) error
	AttachClaim(ctx context.Context, id, claimID string) error
	IncrementLikes(ctx context.Context, id string) error
	IncrementReports(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post with a fresh id, timestamps and active status
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID().Hex()
	post.Status = models.PostStatusActive
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves all posts with pagination, newest first
func (r *MongoPostRepository) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	return r.findPosts(ctx, bson.M{}, skip, limit)
}

// GetPostsByAuthorID retrieves posts created by a specific user, newest first
func (r *MongoPostRepository) GetPostsByAuthorID(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error) {
	return r.findPosts(ctx, bson.M{"author_id": authorID}, skip, limit)
}

// GetPostsByStatus retrieves posts in a given lifecycle state, newest first
func (r *MongoPostRepository) GetPostsByStatus(ctx context.Context, status models.PostStatus, skip, limit int64) ([]models.Post, error) {
	return r.findPosts(ctx, bson.M{"status": status}, skip, limit)
}

func (r *MongoPostRepository) findPosts(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePostStatus sets the lifecycle status of a post and refreshes updated_at
func (r *MongoPostRepository) UpdatePostStatus(ctx context.Context, id string, status models.PostStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachClaim links the authoritative claim to a post
func (r *MongoPostRepository) AttachClaim(ctx context.Context, id, claimID string) error {
	update := bson.M{"$set": bson.M{"claim_id": claimID, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementLikes increments the likes counter of a post
func (r *MongoPostRepository) IncrementLikes(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "likes")
}

// IncrementReports increments the reports counter of a post
func (r *MongoPostRepository) IncrementReports(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "reports")
}

func (r *MongoPostRepository) incrementCounter(ctx context.Context, id, field string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("increment %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
