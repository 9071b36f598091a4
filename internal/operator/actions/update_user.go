package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// UserPatch carries the fields of a profile update request. Nil fields
// keep their current value.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UpdateUser edits a user's profile, refusing an email already taken by
// another user.
type UpdateUser struct {
	ID    uuid.UUID
	Patch UserPatch

	// Result holds the updated user after a successful Perform.
	Result *user.User
}

func (a *UpdateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Users.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}

	if a.Patch.Name != nil {
		row.Name = *a.Patch.Name
	}
	if a.Patch.Email != nil && *a.Patch.Email != row.Email {
		if *a.Patch.Email == "" {
			return fmt.Errorf("email is required: %w", domain.ErrValidation)
		}
		existing, err := writer.Users.FindByEmail(ctx, *a.Patch.Email)
		if err == nil && existing.ID != row.ID {
			return fmt.Errorf("user %s already exists: %w", *a.Patch.Email, domain.ErrConflict)
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		row.Email = *a.Patch.Email
	}
	if a.Patch.PasswordHash != nil {
		row.PasswordHash = *a.Patch.PasswordHash
	}

	if err := writer.Users.Update(ctx, row); err != nil {
		return err
	}
	a.Result = row
	return nil
}
