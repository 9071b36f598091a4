package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// CreateUser registers a new user, refusing duplicate email addresses.
type CreateUser struct {
	Name         string
	Email        string
	PasswordHash string

	// Result holds the created user after a successful Perform.
	Result *user.User
}

func (a *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Email == "" || a.PasswordHash == "" {
		return fmt.Errorf("email and password are required: %w", domain.ErrValidation)
	}

	_, err := writer.Users.FindByEmail(ctx, a.Email)
	if err == nil {
		return fmt.Errorf("user %s already exists: %w", a.Email, domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	id, err := writer.Users.Insert(ctx, &user.UserCreate{
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return err
	}

	created, err := writer.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}
