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

// AccountPatch carries the fields of an account update request. Nil fields
// keep their current value.
type AccountPatch struct {
	Name    *string
	Type    *account.AccountType
	Balance *decimal.Decimal
}

// UpdateAccount edits an account's name, type, or balance. A direct balance
// edit shifts the starting balance by the same delta, so the ledger
// invariant (balance == starting balance + sum of contributions) keeps
// holding without touching any transaction.
type UpdateAccount struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Patch AccountPatch

	// Result holds the updated account after a successful Perform.
	Result *account.Account
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Accounts.FindByIDForUpdate(ctx, a.ID, a.Owner)
	if err != nil {
		return err
	}

	if a.Patch.Name != nil {
		if *a.Patch.Name == "" {
			return fmt.Errorf("account name is required: %w", domain.ErrValidation)
		}
		acct.Name = *a.Patch.Name
	}
	if a.Patch.Type != nil {
		if _, err := account.ParseAccountType(string(*a.Patch.Type)); err != nil {
			return err
		}
		acct.Type = *a.Patch.Type
	}
	if a.Patch.Balance != nil {
		delta := a.Patch.Balance.Sub(acct.Balance)
		acct.Balance = *a.Patch.Balance
		acct.StartingBalance = acct.StartingBalance.Add(delta)
	}

	if err := writer.Accounts.Update(ctx, acct); err != nil {
		return err
	}
	a.Result = acct
	return nil
}
