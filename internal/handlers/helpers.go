package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
)

// currentUser extracts the authenticated user from the JWT claims the auth
// middleware placed in the context.
func currentUser(c echo.Context) (*models.User, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return &models.User{
		ID:          claims.UserID,
		Username:    claims.Username,
		AccountType: claims.AccountType,
	}, nil
}

// httpError maps domain errors to HTTP status codes
func httpError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrSelfClaim):
		return echo.NewHTTPError(http.StatusForbidden, "You cannot claim your own post")
	case errors.Is(err, services.ErrPostNotClaimable):
		return echo.NewHTTPError(http.StatusConflict, "This post is no longer open for claims")
	case errors.Is(err, services.ErrInvalidPostTransition),
		errors.Is(err, services.ErrInvalidClaimTransition),
		errors.Is(err, services.ErrMeetingNotCancellable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmptyMessage):
		return echo.NewHTTPError(http.StatusBadRequest, "Message text cannot be empty")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
