package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// Transaction represents a ledger entry in the service layer, with the
// referenced account and category names resolved for display.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	AccountName     string
	CategoryID      uuid.UUID
	CategoryName    string
	CategoryIcon    string
	Amount          decimal.Decimal
	Type            transaction.EntryType
	Note            string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a transaction.
type TransactionCreate struct {
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Type            transaction.EntryType
	Note            string
	TransactionDate time.Time
}

// TransactionUpdate carries the changed fields of a transaction edit. Nil
// fields keep their current value.
type TransactionUpdate struct {
	Amount          *decimal.Decimal
	Type            *transaction.EntryType
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Note            *string
	TransactionDate *time.Time
}

// TransactionQuery narrows and paginates a transaction listing. Page is
// 1-based; zero values fall back to the first page at the default limit.
type TransactionQuery struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *transaction.EntryType
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Limit      int
}

// TransactionPage is one page of a transaction listing.
type TransactionPage struct {
	Items      []Transaction
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
