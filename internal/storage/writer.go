package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// Tx is the commit/rollback surface of a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes every entity table bound to one database transaction. All
// statements issued through its tables commit or roll back together.
type Writer struct {
	tx Tx

	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Users        user.IUserTable
}

// NewWriter binds fresh entity tables to the given transaction.
func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     account.NewTable(tx),
		Categories:   category.NewTable(tx),
		Transactions: transaction.NewTable(tx),
		Users:        user.NewTable(tx),
	}
}

// NewWriterWithTables builds a Writer from explicit parts. Used by tests to
// substitute in-memory tables.
func NewWriterWithTables(
	tx Tx,
	accounts account.IAccountTable,
	categories category.ICategoryTable,
	transactions transaction.ITransactionTable,
	users user.IUserTable,
) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     accounts,
		Categories:   categories,
		Transactions: transactions,
		Users:        users,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
