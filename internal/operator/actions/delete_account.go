package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

// DeleteAccount removes an account, refusing while any transaction still
// references it.
type DeleteAccount struct {
	ID    uuid.UUID
	Owner uuid.UUID
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Accounts.FindByIDForUpdate(ctx, a.ID, a.Owner); err != nil {
		return err
	}

	count, err := writer.Transactions.CountByAccount(ctx, a.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("account has %d transactions: %w", count, domain.ErrConflict)
	}

	return writer.Accounts.Delete(ctx, a.ID, a.Owner)
}
