package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

// DeleteCategory removes a category, refusing while any transaction still
// references it.
type DeleteCategory struct {
	ID    uuid.UUID
	Owner uuid.UUID
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Categories.FindByID(ctx, a.ID, a.Owner); err != nil {
		return err
	}

	count, err := writer.Transactions.CountByCategory(ctx, a.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category has %d transactions: %w", count, domain.ErrConflict)
	}

	return writer.Categories.Delete(ctx, a.ID, a.Owner)
}
