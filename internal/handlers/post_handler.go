package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
)

// PostHandler handles HTTP requests related to lost/found posts
type PostHandler struct {
	postRepository repositories.PostRepository
	moderation     *services.ModerationService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, moderation *services.ModerationService) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		moderation:     moderation,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts", h.GetPosts)
	g.PUT("/posts/:id/status", h.UpdatePostStatus)
	g.POST("/posts/:id/likes", h.LikePost)
	g.POST("/posts/:id/reports", h.ReportPost)
}

// CreatePost creates a new lost/found post
func (h *PostHandler) CreatePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:          req.Title,
		Category:       req.Category,
		Type:           models.PostType(req.Type),
		Description:    req.Description,
		PrivateDetails: req.PrivateDetails,
		Location:       req.Location,
		Photos:         req.Photos,
		AuthorID:       user.ID,
		AuthorName:     user.Username,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID, redacting private details for viewers who
// are neither the author nor an admin
func (h *PostHandler) GetPost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, h.viewOf(*post, user))
}

// GetPosts retrieves multiple posts, optionally filtered by author or status
func (h *PostHandler) GetPosts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	authorID := c.QueryParam("author_id")
	status := c.QueryParam("status")
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20 // Default limit
	}

	var posts []models.Post
	switch {
	case authorID != "":
		posts, err = h.postRepository.GetPostsByAuthorID(c.Request().Context(), authorID, skip, limit)
	case status != "":
		posts, err = h.postRepository.GetPostsByStatus(c.Request().Context(), models.PostStatus(status), skip, limit)
	default:
		posts, err = h.postRepository.GetAllPosts(c.Request().Context(), skip, limit)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := make([]models.Post, len(posts))
	for i, p := range posts {
		views[i] = h.viewOf(p, user)
	}
	return c.JSON(http.StatusOK, views)
}

// UpdatePostStatus moves a post along its state machine. Only the author or
// an admin may change a post's status.
func (h *PostHandler) UpdatePostStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	var req models.UpdatePostStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != user.ID && !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	updated, err := h.moderation.UpdateStatus(c.Request().Context(), postID, models.PostStatus(req.Status))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// LikePost increments the likes counter of a post
func (h *PostHandler) LikePost(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	if err := h.postRepository.IncrementLikes(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReportPost increments the reports counter of a post
func (h *PostHandler) ReportPost(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	if err := h.postRepository.IncrementReports(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// viewOf strips private details unless the viewer is the author or an admin
func (h *PostHandler) viewOf(post models.Post, viewer *models.User) models.Post {
	if post.AuthorID == viewer.ID || viewer.IsAdmin() {
		return post
	}
	return post.Redacted()
}
