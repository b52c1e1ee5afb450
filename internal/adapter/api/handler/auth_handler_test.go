package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameclub/internal/adapter/api"
	"gameclub/internal/domain/entity"
	"gameclub/internal/infrastructure/auth"
	"gameclub/internal/usecase"
	"gameclub/pkg/errors"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = "user-1"
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func newAuthHandlerFixture() *AuthHandler {
	userRepo := &stubUserRepo{users: map[string]*entity.User{}}
	tokens := auth.NewTokenManager("test-secret", 3600)
	return NewAuthHandler(usecase.NewAuthUseCase(userRepo, tokens))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterEndpointIssuesToken(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandlerFixture()

	c, rec := postJSON(e, "/api/auth/register", `{"name":"Arman","email":"arman@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, "arman@example.com", body.Data.User.Email)
	assert.Empty(t, body.Data.User.Password, "password hash must never leave the API")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterEndpointValidatesPayload(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandlerFixture()

	c, rec := postJSON(e, "/api/auth/register", `{"name":"A","email":"not-an-email","password":"short"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestLoginEndpointRoundTrip(t *testing.T) {
	e := echo.New()
	e.Validator = api.NewValidator()
	h := newAuthHandlerFixture()

	c, rec := postJSON(e, "/api/auth/register", `{"name":"Arman","email":"arman@example.com","password":"password123"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/api/auth/login", `{"email":"arman@example.com","password":"password123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = postJSON(e, "/api/auth/login", `{"email":"arman@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
