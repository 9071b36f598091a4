package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
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

var _ ICategoryTable = (*Table)(nil)

// Table provides access to the categories table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

var columns = []any{"id", "user_id", "name", "type", "icon", "created_at"}

// FindByID retrieves a category scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, owner uuid.UUID) (*Category, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		psql.WhereAnd(whereMods...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return row, nil
}

// ExistsByName reports whether the owner already has a category with the
// given name and type, excluding excludeID when non-nil.
func (t *Table) ExistsByName(ctx context.Context, owner uuid.UUID, name string, categoryType CategoryType, excludeID *uuid.UUID) (bool, error) {
	whereMods := []mods.Where[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(categoryType)))),
	}
	if excludeID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("id").NE(psql.Arg(*excludeID))))
	}

	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From("categories"),
		psql.WhereAnd(whereMods...),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new category and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	icon := create.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "type", "icon"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(string(create.Type)),
			psql.Arg(icon),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update persists the mutable fields of a category.
func (t *Table) Update(ctx context.Context, c *Category) error {
	q := psql.Update(
		um.Table("categories"),
		um.SetCol("name").ToArg(c.Name),
		um.SetCol("type").ToArg(string(c.Type)),
		um.SetCol("icon").ToArg(c.Icon),
		um.Where(psql.Quote("id").EQ(psql.Arg(c.ID))),
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
		return fmt.Errorf("category %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a category scoped to its owner.
func (t *Table) Delete(ctx context.Context, id, owner uuid.UUID) error {
	whereMods := []mods.Where[*dialect.DeleteQuery]{
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
	}
	q := psql.Delete(
		dm.From("categories"),
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
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all categories belonging to the owner, newest first.
func (t *Table) List(ctx context.Context, owner uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(owner))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}
