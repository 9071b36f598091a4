package account

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
)

// AccountType enumerates the supported account kinds.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCreditCard AccountType = "credit-card"
	AccountTypeWallet     AccountType = "wallet"
	AccountTypeOther      AccountType = "other"
)

// ParseAccountType validates a raw account type string.
func ParseAccountType(raw string) (AccountType, error) {
	switch AccountType(raw) {
	case AccountTypeBank, AccountTypeCreditCard, AccountTypeWallet, AccountTypeOther:
		return AccountType(raw), nil
	}
	return "", fmt.Errorf("account type %q: %w", raw, domain.ErrValidation)
}

// Account represents an account record. Balance always equals
// StartingBalance plus the signed contributions of every transaction
// referencing the account.
type Account struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Name            string          `db:"name"`
	Type            AccountType     `db:"type"`
	Balance         decimal.Decimal `db:"balance"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	CreatedAt       time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID          uuid.UUID
	Name            string
	Type            AccountType
	StartingBalance decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, id, owner uuid.UUID) (*Account, error)
	FindByIDForUpdate(ctx context.Context, id, owner uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	Update(ctx context.Context, a *Account) error
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	Delete(ctx context.Context, id, owner uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID) ([]*Account, error)
}
