package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

var _ ITransactionTable = (*Table)(nil)

// Table provides access to the transactions table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var columns = []any{"id", "user_id", "account_id", "category_id", "amount", "type", "note", "transaction_date", "created_at"}

// FindByID retrieves a transaction scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, owner uuid.UUID) (*Transaction, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		psql.WhereAnd(whereMods...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "account_id", "category_id", "amount", "type", "note", "transaction_date"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.AccountID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(string(create.Type)),
			psql.Arg(create.Note),
			psql.Arg(create.TransactionDate),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update persists the mutable fields of a transaction.
func (t *Table) Update(ctx context.Context, tx *Transaction) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("account_id").ToArg(tx.AccountID),
		um.SetCol("category_id").ToArg(tx.CategoryID),
		um.SetCol("amount").ToArg(tx.Amount),
		um.SetCol("type").ToArg(string(tx.Type)),
		um.SetCol("note").ToArg(tx.Note),
		um.SetCol("transaction_date").ToArg(tx.TransactionDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(tx.ID))),
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
		return fmt.Errorf("transaction %s: %w", tx.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a transaction scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, owner uuid.UUID) error {
	whereMods := []mods.Where[*dialect.DeleteQuery]{
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	q := psql.Delete(
		dm.From("transactions"),
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
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func filterWhereMods(owner uuid.UUID, filter *TransactionFilter) []mods.Where[*dialect.SelectQuery] {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	if filter == nil {
		return whereMods
	}
	if filter.AccountID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	if filter.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.Type != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
	}
	if filter.DateFrom != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*filter.DateTo))))
	}
	return whereMods
}

// List returns the owner's transactions matching the filter, most recent
// transaction date first.
func (t *Table) List(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		psql.WhereAnd(filterWhereMods(owner, filter)...),
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("id").Desc(),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// Count returns the number of the owner's transactions matching the filter,
// ignoring limit and offset.
func (t *Table) Count(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
		psql.WhereAnd(filterWhereMods(owner, filter)...),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// CountByAccount returns the number of transactions referencing an account.
func (t *Table) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// CountByCategory returns the number of transactions referencing a category.
func (t *Table) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

func rangeWhereMods(owner uuid.UUID, entryType EntryType, from, to time.Time) []mods.Where[*dialect.SelectQuery] {
	return []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(entryType)))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(to))),
	}
}

// SumByType totals the amounts of the owner's transactions of the given
// type within [from, to].
func (t *Table) SumByType(ctx context.Context, owner uuid.UUID, entryType EntryType, from, to time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("transactions"),
		psql.WhereAnd(rangeWhereMods(owner, entryType, from, to)...),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// CategoryTotals groups the owner's transactions of the given type within
// [from, to] by category and totals their amounts, largest first.
func (t *Table) CategoryTotals(ctx context.Context, owner uuid.UUID, entryType EntryType, from, to time.Time) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns("category_id", psql.Raw("SUM(amount) AS total")),
		sm.From("transactions"),
		psql.WhereAnd(rangeWhereMods(owner, entryType, from, to)...),
		sm.GroupBy("category_id"),
		sm.OrderBy(psql.Raw("total")).Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*CategoryTotal]())
}
