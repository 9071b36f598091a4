package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
)

// CreateAccount creates an account with an explicit initial balance.
type CreateAccount struct {
	Owner           uuid.UUID
	Name            string
	Type            account.AccountType
	StartingBalance decimal.Decimal

	// Result holds the created account after a successful Perform.
	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return fmt.Errorf("account name is required: %w", domain.ErrValidation)
	}
	if _, err := account.ParseAccountType(string(a.Type)); err != nil {
		return err
	}

	id, err := writer.Accounts.Insert(ctx, &account.AccountCreate{
		UserID:          a.Owner,
		Name:            a.Name,
		Type:            a.Type,
		StartingBalance: a.StartingBalance,
	})
	if err != nil {
		return err
	}

	created, err := writer.Accounts.FindByID(ctx, id, a.Owner)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}
