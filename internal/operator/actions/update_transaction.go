package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// TransactionPatch carries the fields of an update request. Nil fields keep
// their current value; this keeps "unchanged" and "explicitly set"
// unambiguous even for untyped inbound payloads.
type TransactionPatch struct {
	Amount          *decimal.Decimal
	Type            *transaction.EntryType
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Note            *string
	TransactionDate *time.Time
}

// UpdateTransaction merges a patch over an existing ledger entry and, when
// the (amount, type, account) tuple changed, reverts the old contribution
// from the old account and applies the new one to the new account. The two
// balance adjustments always run as a pair, so a same-account change nets
// out to the correct single delta.
type UpdateTransaction struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Patch TransactionPatch

	// Result holds the updated transaction after a successful Perform.
	Result *ResolvedTransaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, a.ID, a.Owner)
	if err != nil {
		return err
	}

	merged := *existing
	if a.Patch.Amount != nil {
		merged.Amount = *a.Patch.Amount
	}
	if a.Patch.Type != nil {
		merged.Type = *a.Patch.Type
	}
	if a.Patch.AccountID != nil {
		merged.AccountID = *a.Patch.AccountID
	}
	if a.Patch.CategoryID != nil {
		merged.CategoryID = *a.Patch.CategoryID
	}
	if a.Patch.Note != nil {
		merged.Note = *a.Patch.Note
	}
	if a.Patch.TransactionDate != nil {
		merged.TransactionDate = *a.Patch.TransactionDate
	}

	if !merged.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if _, err := transaction.ParseEntryType(string(merged.Type)); err != nil {
		return err
	}

	cat, err := writer.Categories.FindByID(ctx, merged.CategoryID, a.Owner)
	if err != nil {
		return err
	}
	if string(cat.Type) != string(merged.Type) {
		return fmt.Errorf("category type (%s) does not match transaction type (%s): %w",
			cat.Type, merged.Type, domain.ErrValidation)
	}

	// Balances only move when a balance-relevant field changed. Note/date
	// edits skip reconciliation entirely.
	needsReconciliation := !existing.Amount.Equal(merged.Amount) ||
		existing.Type != merged.Type ||
		existing.AccountID != merged.AccountID

	oldAccount, err := writer.Accounts.FindByIDForUpdate(ctx, existing.AccountID, a.Owner)
	if err != nil {
		return err
	}

	newAccount := oldAccount
	if merged.AccountID != existing.AccountID {
		newAccount, err = writer.Accounts.FindByIDForUpdate(ctx, merged.AccountID, a.Owner)
		if err != nil {
			return err
		}
	}

	if needsReconciliation {
		revert := transaction.Contribution(existing.Type, existing.Amount).Neg()
		if err := writer.Accounts.AdjustBalance(ctx, existing.AccountID, revert); err != nil {
			return err
		}
		oldAccount.Balance = oldAccount.Balance.Add(revert)

		apply := transaction.Contribution(merged.Type, merged.Amount)
		if err := writer.Accounts.AdjustBalance(ctx, merged.AccountID, apply); err != nil {
			return err
		}
		newAccount.Balance = newAccount.Balance.Add(apply)
	}

	if err := writer.Transactions.Update(ctx, &merged); err != nil {
		return err
	}

	a.Result = &ResolvedTransaction{
		Transaction: &merged,
		Account:     newAccount,
		Category:    cat,
	}
	return nil
}
