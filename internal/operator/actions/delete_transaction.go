package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// DeleteTransaction removes a ledger entry and reverts its contribution
// from the owning account, as one atomic unit. Deleting a transaction right
// after creating it leaves the account balance exactly as it started.
type DeleteTransaction struct {
	ID    uuid.UUID
	Owner uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, a.ID, a.Owner)
	if err != nil {
		return err
	}

	if _, err := writer.Accounts.FindByIDForUpdate(ctx, existing.AccountID, a.Owner); err != nil {
		return err
	}

	revert := transaction.Contribution(existing.Type, existing.Amount).Neg()
	if err := writer.Accounts.AdjustBalance(ctx, existing.AccountID, revert); err != nil {
		return err
	}

	return writer.Transactions.Delete(ctx, a.ID, a.Owner)
}
