package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. Callers map it to 401 without saying which of the two
// it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User represents a user in the service layer. The password hash never
// leaves storage.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Session is an authenticated user together with a signed session token.
type Session struct {
	User  User
	Token string
}

// UserService handles registration, login, and user lookups.
type UserService struct {
	storage   *storage.Storage
	processor Processor
	sessions  *auth.Sessions
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor Processor, sessions *auth.Sessions) *UserService {
	return &UserService{storage: store, processor: processor, sessions: sessions}
}

// Register creates a user account and opens a session for it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateUser{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.openSession(action.Result)
}

// Login verifies the credentials and opens a session.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, row.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(row)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u := userFromStorage(row)
	return &u, nil
}

// ProfileUpdate carries the changed fields of a profile edit. Nil fields
// keep their current value. Setting NewPassword requires CurrentPassword
// to match the stored one.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile edits the user's name, email, or password. A password
// change is only applied after the current password verifies.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*User, error) {
	patch := actions.UserPatch{
		Name:  update.Name,
		Email: update.Email,
	}

	if update.NewPassword != "" {
		row, err := s.storage.Users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !auth.VerifyPassword(update.CurrentPassword, row.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		hash, err := auth.HashPassword(update.NewPassword)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	action := &actions.UpdateUser{ID: id, Patch: patch}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	u := userFromStorage(action.Result)
	return &u, nil
}

// SessionMaxAge returns the session lifetime in whole seconds, for the
// cookie Max-Age attribute.
func (s *UserService) SessionMaxAge() int {
	return int(s.sessions.TTL() / time.Second)
}

func (s *UserService) openSession(row *user.User) (*Session, error) {
	token, err := s.sessions.Issue(row.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: userFromStorage(row), Token: token}, nil
}

func userFromStorage(row *user.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
