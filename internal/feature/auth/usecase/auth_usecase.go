package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"microblog_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 8
	// minUsernameLength and maxUsernameLength bound the username.
	minUsernameLength = 3
	maxUsernameLength = 64
)

// dummyHash is a bcrypt hash compared against when the username does not
// exist, so login takes the same time either way (timing attack mitigation).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrUsernameTaken if the username already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the specified username.
	// It returns ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Hasher is the password hashing capability used by the usecase.
// Plaintext passwords never leave this boundary unhashed.
type Hasher interface {
	// Hash returns the salted one-way hash of plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(plaintext, hashed string) bool
}

// TokenCodec signs and verifies the session tokens handed to clients.
type TokenCodec interface {
	// Issue creates a signed token bound to the given session and user.
	Issue(sessionID string, userID uint) (string, error)
	// Parse verifies a token and returns the session id and user id it carries.
	Parse(token string) (sessionID string, userID uint, err error)
}

// authUsecase implements registration, login, logout and identity resolution.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	hasher     Hasher
	tokens     TokenCodec
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, hasher Hasher, tokens TokenCodec, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// validateUsername checks the username bounds.
func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be between %d and %d characters",
			ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	return nil
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password.
// It returns ErrUsernameTaken when the username already exists.
func (u *authUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, PasswordHash: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a session token on success.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials;
// the hash comparison runs in both cases to keep the timing uniform.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	ok := u.hasher.Verify(password, passwordHash)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.Issue(session.ID, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Resolve maps a session token to the acting identity. It never returns an
// error: a malformed, expired or revoked token, a missing session, and a
// missing user all resolve to nil (anonymous), since anonymous browsing is a
// valid state.
func (u *authUsecase) Resolve(ctx context.Context, token string) *entity.Identity {
	sessionID, _, err := u.tokens.Parse(token)
	if err != nil {
		return nil
	}

	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil || !session.IsValid() {
		return nil
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil
	}

	return &entity.Identity{UserID: user.ID, Username: user.Username}
}

// Logout ends the session referenced by the token. It is idempotent: an
// unparseable token or an already-ended session is a no-op, not an error.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, _, err := u.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := u.sessions.Revoke(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}
