package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            account.AccountType
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
}

// AccountCreate is the input for creating an account.
type AccountCreate struct {
	Name            string
	Type            account.AccountType
	StartingBalance decimal.Decimal
}

// AccountUpdate carries the changed fields of an account edit. Nil fields
// keep their current value.
type AccountUpdate struct {
	Name    *string
	Type    *account.AccountType
	Balance *decimal.Decimal
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		CreatedAt:       row.CreatedAt,
	}
}
