package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
)

// ClaimHandler handles HTTP requests related to ownership claims
type ClaimHandler struct {
	claimService    *services.ClaimService
	claimRepository repositories.ClaimRepository
	postRepository  repositories.PostRepository
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(claimService *services.ClaimService, claimRepo repositories.ClaimRepository, postRepo repositories.PostRepository) *ClaimHandler {
	return &ClaimHandler{
		claimService:    claimService,
		claimRepository: claimRepo,
		postRepository:  postRepo,
	}
}

// RegisterClaimRoutes registers claim-related routes
func (h *ClaimHandler) RegisterClaimRoutes(g *echo.Group) {
	g.POST("/claims", h.SubmitClaim)
	g.GET("/claims", h.GetMyClaims)
	g.GET("/posts/:id/claims", h.GetClaimsForPost)
	g.PUT("/claims/:id/status", h.UpdateClaimStatus)
}

// SubmitClaim files an ownership claim against a post
func (h *ClaimHandler) SubmitClaim(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req models.SubmitClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claim, err := h.claimService.SubmitClaim(c.Request().Context(), user, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, claim)
}

// GetMyClaims lists the claims the authenticated user has submitted
func (h *ClaimHandler) GetMyClaims(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	claims, err := h.claimRepository.GetClaimsByClaimantID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, claims)
}

// GetClaimsForPost lists the claims against a post. Only the post author or
// an admin may see them.
func (h *ClaimHandler) GetClaimsForPost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != user.ID && !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to view claims for this post")
	}

	claims, err := h.claimRepository.GetClaimsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, claims)
}

// UpdateClaimStatus moves a claim along its state machine. Only the author
// of the claimed post or an admin may change a claim's status.
func (h *ClaimHandler) UpdateClaimStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	claimID := c.Param("id")

	var req models.UpdateClaimStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claim, err := h.claimRepository.GetClaimByID(claimID)
	if err != nil {
		return httpError(err)
	}
	post, err := h.postRepository.GetPostByID(c.Request().Context(), claim.PostID)
	if err != nil {
		return httpError(err)
	}
	if post.AuthorID != user.ID && !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this claim")
	}

	updated, err := h.claimService.UpdateClaimStatus(c.Request().Context(), claimID, models.ClaimStatus(req.Status))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, updated)
}
