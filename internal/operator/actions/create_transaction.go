package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// ResolvedTransaction is a transaction together with the account and
// category rows it references.
type ResolvedTransaction struct {
	Transaction *transaction.Transaction
	Account     *account.Account
	Category    *category.Category
}

// CreateTransaction inserts a ledger entry and applies its contribution to
// the referenced account balance, as one atomic unit.
type CreateTransaction struct {
	Owner           uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Type            transaction.EntryType
	Note            string
	TransactionDate time.Time

	// Result holds the created transaction after a successful Perform.
	Result *ResolvedTransaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	}
	if _, err := transaction.ParseEntryType(string(a.Type)); err != nil {
		return err
	}

	// Locks the account row until commit so that concurrent contributions to
	// the same account serialize.
	acct, err := writer.Accounts.FindByIDForUpdate(ctx, a.AccountID, a.Owner)
	if err != nil {
		return err
	}

	cat, err := writer.Categories.FindByID(ctx, a.CategoryID, a.Owner)
	if err != nil {
		return err
	}
	if string(cat.Type) != string(a.Type) {
		return fmt.Errorf("category type (%s) does not match transaction type (%s): %w",
			cat.Type, a.Type, domain.ErrValidation)
	}

	id, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:          a.Owner,
		AccountID:       a.AccountID,
		CategoryID:      a.CategoryID,
		Amount:          a.Amount,
		Type:            a.Type,
		Note:            a.Note,
		TransactionDate: a.TransactionDate,
	})
	if err != nil {
		return err
	}

	contribution := transaction.Contribution(a.Type, a.Amount)
	if err := writer.Accounts.AdjustBalance(ctx, a.AccountID, contribution); err != nil {
		return err
	}

	created, err := writer.Transactions.FindByID(ctx, id, a.Owner)
	if err != nil {
		return err
	}

	acct.Balance = acct.Balance.Add(contribution)
	a.Result = &ResolvedTransaction{
		Transaction: created,
		Account:     acct,
		Category:    cat,
	}
	return nil
}
