package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
	"github.com/lostfound-app/backend/internal/store"
	"github.com/lostfound-app/backend/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaimTestHandler(t *testing.T) (*ClaimHandler, repositories.Repositories, *echo.Echo) {
	t.Helper()
	repos := store.NewMemoryStore().Repositories()
	notifications := services.NewNotificationService(repos.Notifications)
	moderation := services.NewModerationService(repos.Posts, notifications)
	claimService := services.NewClaimService(repos.Posts, repos.Claims, repos.ChatMessages, notifications, moderation)

	e := echo.New()
	e.Validator = validators.NewValidator()

	return NewClaimHandler(claimService, repos.Claims, repos.Posts), repos, e
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, user *models.User) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{
		UserID:      user.ID,
		Username:    user.Username,
		AccountType: user.AccountType,
	})
	return c
}

func TestSubmitClaimEndpoint(t *testing.T) {
	h, repos, e := newClaimTestHandler(t)

	author := &models.User{ID: "author-1", Username: "janesmith"}
	post := &models.Post{
		Title:       "Found Car Keys",
		Category:    "Keys",
		Type:        models.PostTypeFound,
		Description: "Found Honda car keys with blue keychain",
		Location:    "Downtown Coffee Shop",
		AuthorID:    author.ID,
		AuthorName:  author.Username,
	}
	require.NoError(t, repos.Posts.CreatePost(context.Background(), post))

	claimant := &models.User{ID: "claimant-1", Username: "johndoe", AccountType: models.AccountTypeUser}
	body := `{"post_id":"` + post.ID + `","message":"These are my keys, keychain says Best Dad"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, claimant)

	require.NoError(t, h.SubmitClaim(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var claim models.Claim
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claim))
	assert.Equal(t, models.ClaimStatusPending, claim.Status)
	assert.Equal(t, post.ID, claim.PostID)
	assert.NotEmpty(t, claim.ChatID)
}

func TestSubmitClaimEndpoint_SelfClaim(t *testing.T) {
	h, repos, e := newClaimTestHandler(t)

	author := &models.User{ID: "author-1", Username: "janesmith", AccountType: models.AccountTypeUser}
	post := &models.Post{
		Title:       "Found Car Keys",
		Category:    "Keys",
		Type:        models.PostTypeFound,
		Description: "Found Honda car keys with blue keychain",
		Location:    "Downtown Coffee Shop",
		AuthorID:    author.ID,
		AuthorName:  author.Username,
	}
	require.NoError(t, repos.Posts.CreatePost(context.Background(), post))

	body := `{"post_id":"` + post.ID + `","message":"Trying to claim my own item"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, author)

	err := h.SubmitClaim(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestSubmitClaimEndpoint_ValidationFailure(t *testing.T) {
	h, _, e := newClaimTestHandler(t)

	claimant := &models.User{ID: "claimant-1", Username: "johndoe", AccountType: models.AccountTypeUser}
	// Message too short
	body := `{"post_id":"some-post","message":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, claimant)

	err := h.SubmitClaim(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
