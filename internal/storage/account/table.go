package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
)

var _ IAccountTable = (*Table)(nil)

// Table provides access to the accounts table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var columns = []any{"id", "user_id", "name", "type", "balance", "starting_balance", "created_at"}

func (t *Table) findByID(ctx context.Context, id, owner uuid.UUID, forUpdate bool) (*Account, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		psql.WhereAnd(whereMods...),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

// FindByID retrieves an account scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, owner uuid.UUID) (*Account, error) {
	return t.findByID(ctx, id, owner, false)
}

// FindByIDForUpdate retrieves an account and locks its row for the duration
// of the surrounding transaction.
func (t *Table) FindByIDForUpdate(ctx context.Context, id, owner uuid.UUID) (*Account, error) {
	return t.findByID(ctx, id, owner, true)
}

// Insert creates a new account and returns its generated ID. The current
// balance starts equal to the starting balance.
func (t *Table) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "user_id", "name", "type", "balance", "starting_balance"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(string(create.Type)),
			psql.Arg(create.StartingBalance),
			psql.Arg(create.StartingBalance),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update persists the mutable fields of an account.
func (t *Table) Update(ctx context.Context, a *Account) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(a.Name),
		um.SetCol("type").ToArg(string(a.Type)),
		um.SetCol("balance").ToArg(a.Balance),
		um.SetCol("starting_balance").ToArg(a.StartingBalance),
		um.Where(psql.Quote("id").EQ(psql.Arg(a.ID))),
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
		return fmt.Errorf("account %s: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

// AdjustBalance applies a relative increment to the account balance. The
// increment is evaluated in the database so concurrent adjustments against
// the same row serialize instead of losing updates.
func (t *Table) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
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
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an account scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, owner uuid.UUID) error {
	whereMods := []mods.Where[*dialect.DeleteQuery]{
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	q := psql.Delete(
		dm.From("accounts"),
		psql.WhereAnd(whereMods...),
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
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all accounts belonging to the owner, newest first.
func (t *Table) List(ctx context.Context, owner uuid.UUID) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Account]())
}
