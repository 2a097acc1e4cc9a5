package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/api/middleware"
	"github.com/taskvault/taskvault-api/internal/mocks"
	"github.com/taskvault/taskvault-api/internal/service/auth"
)

// runAuth sends a request with the given Authorization header through the
// middleware and reports the response plus whether the next handler ran.
func runAuth(
	t *testing.T,
	jwtService *mocks.MockJWTService,
	header string,
) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	var (
		nextCalled bool
		seenUserID uuid.UUID
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		seenUserID, _ = middleware.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	handler := authMiddleware.Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr, nextCalled, seenUserID
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token passes user ID to handler", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}}

		rr, nextCalled, seenUserID := runAuth(t, jwtService, "Bearer good-token")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, userID, seenUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		rr, nextCalled, _ := runAuth(t, &mocks.MockJWTService{}, "")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
		assert.Equal(t, "Authorization header required", errorMessage(t, rr))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		rr, nextCalled, _ := runAuth(t, &mocks.MockJWTService{}, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
		assert.Equal(t, "Invalid authorization format", errorMessage(t, rr))
	})

	t.Run("missing token part", func(t *testing.T) {
		t.Parallel()

		rr, nextCalled, _ := runAuth(t, &mocks.MockJWTService{}, "Bearer")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		rr, nextCalled, _ := runAuth(t, jwtService, "Bearer stale-token")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
		assert.Equal(t, "Token expired", errorMessage(t, rr))
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		rr, nextCalled, _ := runAuth(t, jwtService, "Bearer forged-token")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
		assert.Equal(t, "Invalid token", errorMessage(t, rr))
	})

	t.Run("unexpected validation error", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: errors.New("key store unavailable")}
		rr, nextCalled, _ := runAuth(t, jwtService, "Bearer token")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.False(t, nextCalled)
	})
}
