package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/mahakmahak49793/finance-tracker/internal/config"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// Storage bundles the per-entity tables bound to the shared database pool.
// Reads go through the table fields directly; mutations that must be atomic
// go through Write, which binds fresh tables to a single transaction.
type Storage struct {
	db bob.DB

	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Users        user.IUserTable
}

// NewStorage opens the database pool and wires the entity tables.
func NewStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	db := bob.NewDB(sqlDB)
	return &Storage{
		db:           db,
		Accounts:     account.NewTable(db),
		Categories:   category.NewTable(db),
		Transactions: transaction.NewTable(db),
		Users:        user.NewTable(db),
	}, nil
}

// Write begins a database transaction and returns a Writer whose tables are
// bound to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
