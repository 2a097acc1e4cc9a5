package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/service/auth"
	"github.com/taskvault/taskvault-api/internal/store"
)

// UserService provides registration and login.
type UserService interface {
	// Register creates a new account for the given email and password.
	// The email is normalized before the uniqueness check; the password is
	// hashed and never stored in plaintext. Returns an error wrapping
	// store.ErrEmailExists if the email is already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login verifies the credentials and issues a signed token embedding
	// the account ID. Unknown email and wrong password both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	jwtService auth.JWTService
	db         *sql.DB
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		verifier:   verifier,
		jwtService: jwtService,
		db:         db,
		logger:     logger.With("component", "user_service"),
	}
}

// Register creates a new user with the specified email and password.
// Uses a transaction so the uniqueness check and insert are atomic.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	if err := domain.ValidatePassword(password); err != nil {
		s.logger.Debug("registration rejected: password policy", "error", err)
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, hash)
	if err != nil {
		s.logger.Debug("registration rejected: invalid user data", "error", err)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email")
			return nil, err
		}
		s.logger.Error("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered successfully", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and issues a token. The lookup failure and
// the hash mismatch deliberately collapse into the same error.
func (s *UserServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown email")
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return "", nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch", "user_id", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", nil, fmt.Errorf("failed to generate authentication token: %w", err)
	}

	s.logger.Info("user logged in successfully", "user_id", user.ID)
	return token, user, nil
}
