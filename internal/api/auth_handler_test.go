package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/api"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/mocks"
	"github.com/taskvault/taskvault-api/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authFixture wires an AuthHandler on top of a real UserService with mocked
// dependencies.
type authFixture struct {
	handler   *api.AuthHandler
	userStore *mocks.MockUserStore
	verifier  *mocks.MockPasswordVerifier
}

func newAuthFixture() *authFixture {
	userStore := mocks.NewMockUserStore()
	verifier := &mocks.MockPasswordVerifier{}
	userService := service.NewUserService(
		userStore,
		&mocks.MockPasswordHasher{},
		verifier,
		&mocks.MockJWTService{Token: "signed-token"},
		mocks.NewMockDB(),
		testLogger(),
	)
	return &authFixture{
		handler:   api.NewAuthHandler(userService),
		userStore: userStore,
		verifier:  verifier,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if raw, ok := body.(string); ok {
		buf.WriteString(raw)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Register, "/api/auth/register", map[string]string{
			"email":    "Alice@Example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp struct {
			UserID  uuid.UUID `json:"user_id"`
			Message string    `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.NotEmpty(t, resp.Message)

		stored, err := fix.userStore.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, resp.UserID, stored.ID)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Register, "/api/auth/register", "{not json")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Register, "/api/auth/register", map[string]string{
			"email":    "not-an-email",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Register, "/api/auth/register", map[string]string{
			"email":    "alice@example.com",
			"password": "tiny",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		body := map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		}

		rr := postJSON(t, fix.handler.Register, "/api/auth/register", body)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = postJSON(t, fix.handler.Register, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email already registered")
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	registered := func(t *testing.T) *authFixture {
		t.Helper()
		fix := newAuthFixture()
		user, err := domain.NewUser("alice@example.com", "stored-hash")
		require.NoError(t, err)
		require.NoError(t, fix.userStore.Create(context.Background(), user))
		return fix
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		fix := registered(t)
		rr := postJSON(t, fix.handler.Login, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Token  string    `json:"token"`
			UserID uuid.UUID `json:"user_id"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.NotEqual(t, uuid.Nil, resp.UserID)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Login, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		fix := registered(t)
		fix.verifier.Err = errors.New("hash mismatch")
		rr := postJSON(t, fix.handler.Login, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		fix := newAuthFixture()
		rr := postJSON(t, fix.handler.Login, "/api/auth/login", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
