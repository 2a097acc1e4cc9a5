package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
	"github.com/taskvault/taskvault-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Register handles the /api/auth/register endpoint. It creates a new account
// and responds with the new user ID; no token is issued here, the client is
// expected to log in next.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("user registered", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	})
}

// Login handles the /api/auth/login endpoint. Invalid email and wrong
// password produce the same 401 response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, user, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("user logged in", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: user.ID,
	})
}
