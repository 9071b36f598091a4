package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
)

var _ IUserTable = (*Table)(nil)

// Table provides access to the users table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "name", "email", "password_hash", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

// FindByEmail retrieves a user by email address.
func (t *Table) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "name", "email", "password_hash", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

// Insert creates a new user and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("users", "name", "email", "password_hash"),
		im.Values(psql.Arg(create.Name), psql.Arg(create.Email), psql.Arg(create.PasswordHash)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update persists the user's profile fields and password hash.
func (t *Table) Update(ctx context.Context, u *User) error {
	q := psql.Update(
		um.Table("users"),
		um.SetCol("name").ToArg(u.Name),
		um.SetCol("email").ToArg(u.Email),
		um.SetCol("password_hash").ToArg(u.PasswordHash),
		um.Where(psql.Quote("id").EQ(psql.Arg(u.ID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}
