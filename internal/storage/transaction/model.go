package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
)

// EntryType tags a transaction as income or expense. The stored amount is
// always positive; the sign of its balance contribution comes from the type.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// ParseEntryType validates a raw entry type string.
func ParseEntryType(raw string) (EntryType, error) {
	switch EntryType(raw) {
	case EntryTypeIncome, EntryTypeExpense:
		return EntryType(raw), nil
	}
	return "", fmt.Errorf("entry type %q: %w", raw, domain.ErrValidation)
}

// Contribution returns the signed amount a transaction of the given type
// adds to its account balance: +amount for income, -amount for expense.
func Contribution(entryType EntryType, amount decimal.Decimal) decimal.Decimal {
	if entryType == EntryTypeExpense {
		return amount.Neg()
	}
	return amount
}

// Transaction represents a ledger entry referencing one account and one
// category of the same owner.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	AccountID       uuid.UUID       `db:"account_id"`
	CategoryID      uuid.UUID       `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Type            EntryType       `db:"type"`
	Note            string          `db:"note"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Type            EntryType
	Note            string
	TransactionDate time.Time
}

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *EntryType
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// CategoryTotal is an aggregate of transaction amounts per category.
type CategoryTotal struct {
	CategoryID uuid.UUID       `db:"category_id"`
	Total      decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, id, owner uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id, owner uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) (int64, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// SumByType totals the amounts of the owner's transactions of the given
	// type within [from, to].
	SumByType(ctx context.Context, owner uuid.UUID, entryType EntryType, from, to time.Time) (decimal.Decimal, error)
	// CategoryTotals groups the owner's transactions of the given type within
	// [from, to] by category and totals their amounts.
	CategoryTotals(ctx context.Context, owner uuid.UUID, entryType EntryType, from, to time.Time) ([]*CategoryTotal, error)
}
