package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"kolbe-be/internal/password"
	"kolbe-be/internal/repository"
)

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// PasswordHasher derives and checks one-way password hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) error
}

// TokenIssuer mints the session token handed out on login.
type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, time.Time, error)
}

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, email, password string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type RegisterResult struct {
	UserID int64
}

type LoginResult struct {
	UserID    int64
	Email     string
	Token     string    // empty when no issuer is configured
	ExpiresAt time.Time // zero when Token is empty
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	pending  *PendingRegistrations
	log      *slog.Logger

	// Hash of a throwaway password at the hasher's cost, compared against on
	// unknown emails so both login failures take the same time.
	dummyOnce sync.Once
	dummy     string
}

// NewAuthService creates a new auth service. tokens may be nil, in which
// case Login returns the bare user identity.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	pending *PendingRegistrations,
	log *slog.Logger,
) AuthService {
	if pending == nil {
		pending = NewPendingRegistrations()
	}
	if log == nil {
		log = slog.Default()
	}
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		pending:  pending,
		log:      log.With("component", "auth"),
	}
}

// Register validates the credentials, rejects a pair that is already being
// registered, hashes the password and inserts the user.
func (s *authService) Register(ctx context.Context, email, plain string) (*RegisterResult, error) {
	if err := validateRegistration(email, plain); err != nil {
		s.log.InfoContext(ctx, "registration rejected", "reason", err.Error())
		return nil, err
	}

	release, ok := s.pending.Acquire(email, plain)
	if !ok {
		s.log.WarnContext(ctx, "duplicate registration in flight", "email", email)
		return nil, errDuplicateInFlight
	}
	defer release()

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		s.log.ErrorContext(ctx, "password hashing failed", "error", err)
		return nil, storeError("registration failed, please try again", err)
	}

	user, err := s.userRepo.Create(ctx, email, hash)
	if errors.Is(err, repository.ErrEmailTaken) {
		s.log.InfoContext(ctx, "email already registered", "email", email)
		return nil, errEmailExists
	}
	if err != nil {
		s.log.ErrorContext(ctx, "user insert failed", "error", err)
		return nil, storeError("registration failed, please try again", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return &RegisterResult{UserID: user.ID}, nil
}

// Login verifies the credentials. An unknown email and a wrong password
// produce the same error.
func (s *authService) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	if email == "" || plain == "" {
		return nil, validationError("missing credentials")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		_ = s.hasher.Verify(s.dummyHash(), plain)
		s.log.InfoContext(ctx, "login failed", "reason", "unknown email")
		return nil, errInvalidCredentials
	}
	if err != nil {
		s.log.ErrorContext(ctx, "user lookup failed", "error", err)
		return nil, storeError("login failed, please try again", err)
	}

	if err := s.hasher.Verify(user.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.log.InfoContext(ctx, "login failed", "reason", "wrong password", "user_id", user.ID)
			return nil, errInvalidCredentials
		}
		s.log.ErrorContext(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, storeError("login failed, please try again", err)
	}

	result := &LoginResult{UserID: user.ID, Email: user.Email}
	if s.tokens != nil {
		token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Email)
		if err != nil {
			s.log.ErrorContext(ctx, "token generation failed", "user_id", user.ID, "error", err)
			return nil, storeError("login failed, please try again", err)
		}
		result.Token = token
		result.ExpiresAt = expiresAt
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return result, nil
}

func (s *authService) dummyHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("kolbe-unknown-account")
		if err != nil {
			s.log.Error("dummy password hash failed", "error", err)
			return
		}
		s.dummy = hash
	})
	return s.dummy
}

func validateRegistration(email, plain string) error {
	if email == "" || plain == "" {
		return validationError("missing credentials")
	}
	if len(plain) < minPasswordLength {
		return validationError("password too short")
	}
	if len(plain) > maxPasswordLength {
		return validationError("password too long")
	}
	return nil
}
