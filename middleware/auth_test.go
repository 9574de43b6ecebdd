package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadzzz/timesheet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	user := &models.User{
		ID:        "u1",
		Email:     "alice@example.com",
		Name:      "Alice",
		AvatarURL: "http://avatar",
	}

	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "http://avatar", claims.AvatarURL)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ValidateToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(&models.User{ID: "u1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthMiddlewarePutsUserInContext(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(&models.User{ID: "u1", Email: "a@example.com"}, time.Hour)
	require.NoError(t, err)

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, req)

	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)

	// Bearer header works when no cookie is present.
	seen = nil
	req = httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
}

func TestAuthMiddlewareClearsInvalidCookie(t *testing.T) {
	SetJWTSecret("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "corrupt"})
	rec := httptest.NewRecorder()

	called := false
	AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "token=;")
}
