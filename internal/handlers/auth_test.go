package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/store"
	"github.com/lostfound-app/backend/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestHandler(t *testing.T) (*AuthHandler, repositories.Repositories, *echo.Echo) {
	t.Helper()
	repos := store.NewMemoryStore().Repositories()
	e := echo.New()
	e.Validator = validators.NewValidator()
	return NewAuthHandler(repos.Users), repos, e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignup_DefaultsToUserAccount(t *testing.T) {
	h, repos, e := newAuthTestHandler(t)

	body := `{"username":"janesmith","email":"jane@example.com","password":"hunter2hunter2"}`
	c, rec := postJSON(e, "/api/v1/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	user, err := repos.Users.GetUserByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.AccountTypeUser, user.AccountType)
	assert.False(t, user.IsAdmin())
}

func TestSignup_AccountTypeIsSelfSelected(t *testing.T) {
	h, repos, e := newAuthTestHandler(t)

	// The account type is taken from the request, like the client's account
	// type selection screen
	body := `{"username":"adminuser","email":"admin@example.com","password":"hunter2hunter2","account_type":"admin"}`
	c, rec := postJSON(e, "/api/v1/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	user, err := repos.Users.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h, _, e := newAuthTestHandler(t)

	body := `{"username":"janesmith","email":"jane@example.com","password":"hunter2hunter2"}`
	c, _ := postJSON(e, "/api/v1/auth/signup", body)
	require.NoError(t, h.Signup(c))

	c, _ = postJSON(e, "/api/v1/auth/signup", `{"username":"janesmith2","email":"jane@example.com","password":"hunter2hunter2"}`)
	err := h.Signup(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestSignIn_RoundTrip(t *testing.T) {
	h, _, e := newAuthTestHandler(t)

	c, _ := postJSON(e, "/api/v1/auth/signup", `{"username":"janesmith","email":"jane@example.com","password":"hunter2hunter2"}`)
	require.NoError(t, h.Signup(c))

	c, rec := postJSON(e, "/api/v1/auth/signin", `{"email":"jane@example.com","password":"hunter2hunter2"}`)
	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	c, _ = postJSON(e, "/api/v1/auth/signin", `{"email":"jane@example.com","password":"wrong-password"}`)
	err := h.SignIn(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
