package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
)

// AdminHandler handles the administrative moderation surface
type AdminHandler struct {
	postRepository repositories.PostRepository
	moderation     *services.ModerationService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(postRepo repositories.PostRepository, moderation *services.ModerationService) *AdminHandler {
	return &AdminHandler{
		postRepository: postRepo,
		moderation:     moderation,
	}
}

// RegisterAdminRoutes registers admin routes; the group must carry the
// admin-role middleware
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/posts/pending", h.GetPendingPosts)
	g.PUT("/posts/:id/approve", h.ApprovePost)
	g.PUT("/posts/:id/reject", h.RejectPost)
}

// GetPendingPosts lists posts awaiting review (all active posts)
func (h *AdminHandler) GetPendingPosts(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20
	}

	posts, err := h.postRepository.GetPostsByStatus(c.Request().Context(), models.PostStatusActive, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// ApprovePost notifies the author that their post passed review. The post
// status stays active: active already means visible.
func (h *AdminHandler) ApprovePost(c echo.Context) error {
	if err := h.moderation.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RejectPost archives the post and notifies the author
func (h *AdminHandler) RejectPost(c echo.Context) error {
	post, err := h.moderation.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}
