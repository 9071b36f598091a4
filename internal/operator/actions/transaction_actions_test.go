package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/memory"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// perform runs an action the way the operator does: one writer per action,
// commit on success, rollback on failure.
func perform(t *testing.T, store *memory.Store, action IAction) error {
	t.Helper()
	writer, err := store.Write(context.Background())
	assert.NoError(t, err)

	if err := action.Perform(context.Background(), writer); err != nil {
		assert.NoError(t, writer.Rollback())
		return err
	}
	assert.NoError(t, writer.Commit())
	return nil
}

type fixture struct {
	store    *memory.Store
	owner    uuid.UUID
	account  *account.Account
	income   *category.Category
	expenses *category.Category
}

func newFixture(t *testing.T, balance string) *fixture {
	t.Helper()
	f := &fixture{
		store: memory.NewStore(),
		owner: uuid.Must(uuid.NewV4()),
	}
	f.account = &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          f.owner,
		Name:            "Checking",
		Type:            account.AccountTypeBank,
		Balance:         decimal.RequireFromString(balance),
		StartingBalance: decimal.RequireFromString(balance),
	}
	f.income = &category.Category{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: f.owner,
		Name:   "Salary",
		Type:   category.CategoryTypeIncome,
	}
	f.expenses = &category.Category{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: f.owner,
		Name:   "Groceries",
		Type:   category.CategoryTypeExpense,
	}
	f.store.SeedAccount(f.account)
	f.store.SeedCategory(f.income)
	f.store.SeedCategory(f.expenses)
	return f
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	return f.store.Account(f.account.ID).Balance
}

func (f *fixture) createTransaction(t *testing.T, amount string, entryType transaction.EntryType) *CreateTransaction {
	t.Helper()
	categoryID := f.income.ID
	if entryType == transaction.EntryTypeExpense {
		categoryID = f.expenses.ID
	}
	action := &CreateTransaction{
		Owner:           f.owner,
		AccountID:       f.account.ID,
		CategoryID:      categoryID,
		Amount:          decimal.RequireFromString(amount),
		Type:            entryType,
		TransactionDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, perform(t, f.store, action))
	return action
}

// -- CreateTransaction --

func TestCreateTransaction_IncomeIncreasesBalance(t *testing.T) {
	f := newFixture(t, "50")

	action := f.createTransaction(t, "100", transaction.EntryTypeIncome)

	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("150")),
		"income 100 on balance 50 yields 150, got %s", f.balance(t))
	assert.NotNil(t, action.Result)
	assert.True(t, action.Result.Account.Balance.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, f.income.ID, action.Result.Category.ID)
}

func TestCreateTransaction_ExpenseDecreasesBalance(t *testing.T) {
	f := newFixture(t, "50")

	f.createTransaction(t, "20", transaction.EntryTypeExpense)

	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("30")))
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t, "50")

	action := &CreateTransaction{
		Owner:      f.owner,
		AccountID:  f.account.ID,
		CategoryID: f.income.ID,
		Amount:     decimal.Zero,
		Type:       transaction.EntryTypeIncome,
	}
	err := perform(t, f.store, action)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 0, f.store.TransactionCount())
}

func TestCreateTransaction_RejectsCategoryTypeMismatch(t *testing.T) {
	f := newFixture(t, "50")

	// income category paired with an expense entry
	action := &CreateTransaction{
		Owner:      f.owner,
		AccountID:  f.account.ID,
		CategoryID: f.income.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       transaction.EntryTypeExpense,
	}
	err := perform(t, f.store, action)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("50")), "no balance change")
	assert.Equal(t, 0, f.store.TransactionCount(), "no ledger row")
}

func TestCreateTransaction_RejectsForeignAccount(t *testing.T) {
	f := newFixture(t, "50")

	action := &CreateTransaction{
		Owner:      uuid.Must(uuid.NewV4()), // not the seeded owner
		AccountID:  f.account.ID,
		CategoryID: f.income.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       transaction.EntryTypeIncome,
	}
	err := perform(t, f.store, action)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, f.store.TransactionCount())
}

func TestCreateTransaction_RejectsUnknownCategory(t *testing.T) {
	f := newFixture(t, "50")

	action := &CreateTransaction{
		Owner:      f.owner,
		AccountID:  f.account.ID,
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("10"),
		Type:       transaction.EntryTypeIncome,
	}
	err := perform(t, f.store, action)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("50")))
}

// -- DeleteTransaction --

func TestDeleteTransaction_RestoresBalance(t *testing.T) {
	f := newFixture(t, "50")
	created := f.createTransaction(t, "100", transaction.EntryTypeIncome)

	err := perform(t, f.store, &DeleteTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
	})

	assert.NoError(t, err)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("50")),
		"create then delete is a no-op on balance")
	assert.Equal(t, 0, f.store.TransactionCount())
}

func TestDeleteTransaction_UnknownID(t *testing.T) {
	f := newFixture(t, "50")

	err := perform(t, f.store, &DeleteTransaction{
		ID:    uuid.Must(uuid.NewV4()),
		Owner: f.owner,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTransaction_CrossOwner(t *testing.T) {
	f := newFixture(t, "0")
	created := f.createTransaction(t, "25", transaction.EntryTypeIncome)

	err := perform(t, f.store, &DeleteTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: uuid.Must(uuid.NewV4()),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.store.TransactionCount(), "row untouched")
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("25")))
}

// -- UpdateTransaction --

func TestUpdateTransaction_AmountChangeAppliesDelta(t *testing.T) {
	f := newFixture(t, "50")
	created := f.createTransaction(t, "100", transaction.EntryTypeIncome)

	newAmount := decimal.RequireFromString("30")
	action := &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Amount: &newAmount},
	}
	assert.NoError(t, perform(t, f.store, action))

	// 150 - 70, not 150-100 or 150+30
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("80")),
		"amount 100->30 changes balance by -70, got %s", f.balance(t))
	assert.True(t, action.Result.Transaction.Amount.Equal(newAmount))
}

func TestUpdateTransaction_NoteOnlyChangeLeavesBalance(t *testing.T) {
	f := newFixture(t, "50")
	created := f.createTransaction(t, "100", transaction.EntryTypeIncome)

	note := "rent refund"
	action := &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Note: &note},
	}
	assert.NoError(t, perform(t, f.store, action))

	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("150")))
	assert.Equal(t, note, f.store.Transaction(created.Result.Transaction.ID).Note)
}

func TestUpdateTransaction_MoveAcrossAccounts(t *testing.T) {
	f := newFixture(t, "100")
	other := &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          f.owner,
		Name:            "Savings",
		Type:            account.AccountTypeBank,
		Balance:         decimal.RequireFromString("200"),
		StartingBalance: decimal.RequireFromString("200"),
	}
	f.store.SeedAccount(other)

	created := f.createTransaction(t, "50", transaction.EntryTypeExpense)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("50")))

	action := &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{AccountID: &other.ID},
	}
	assert.NoError(t, perform(t, f.store, action))

	// expense reverted on A, applied on B; net system-wide change is zero
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("100")))
	assert.True(t, f.store.Account(other.ID).Balance.Equal(decimal.RequireFromString("150")))
}

func TestUpdateTransaction_TypeFlipSwingsBalanceTwice(t *testing.T) {
	f := newFixture(t, "0")
	created := f.createTransaction(t, "40", transaction.EntryTypeIncome)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("40")))

	newType := transaction.EntryTypeExpense
	action := &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Type: &newType, CategoryID: &f.expenses.ID},
	}
	assert.NoError(t, perform(t, f.store, action))

	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("-40")),
		"revert +40 then apply -40")
}

func TestUpdateTransaction_TypeChangeRequiresMatchingCategory(t *testing.T) {
	f := newFixture(t, "0")
	created := f.createTransaction(t, "40", transaction.EntryTypeIncome)

	newType := transaction.EntryTypeExpense
	err := perform(t, f.store, &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Type: &newType}, // category stays income
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("40")), "rolled back")
}

func TestUpdateTransaction_MoveToForeignAccountRejected(t *testing.T) {
	f := newFixture(t, "0")
	foreign := &account.Account{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: uuid.Must(uuid.NewV4()),
		Name:   "Not yours",
		Type:   account.AccountTypeWallet,
	}
	f.store.SeedAccount(foreign)
	created := f.createTransaction(t, "10", transaction.EntryTypeIncome)

	err := perform(t, f.store, &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{AccountID: &foreign.ID},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("10")), "rolled back")
	assert.Equal(t, f.account.ID, f.store.Transaction(created.Result.Transaction.ID).AccountID)
}

func TestUpdateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t, "0")
	created := f.createTransaction(t, "10", transaction.EntryTypeIncome)

	bad := decimal.RequireFromString("-5")
	err := perform(t, f.store, &UpdateTransaction{
		ID:    created.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Amount: &bad},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, f.balance(t).Equal(decimal.RequireFromString("10")))
}

// -- Ledger invariant --

// balance == startingBalance + sum of signed contributions, after any
// sequence of creates, updates, and deletes.
func TestLedgerInvariant_AfterMixedSequence(t *testing.T) {
	f := newFixture(t, "500")

	first := f.createTransaction(t, "120", transaction.EntryTypeIncome)
	second := f.createTransaction(t, "45.50", transaction.EntryTypeExpense)
	f.createTransaction(t, "30", transaction.EntryTypeExpense)

	newAmount := decimal.RequireFromString("80")
	assert.NoError(t, perform(t, f.store, &UpdateTransaction{
		ID:    first.Result.Transaction.ID,
		Owner: f.owner,
		Patch: TransactionPatch{Amount: &newAmount},
	}))
	assert.NoError(t, perform(t, f.store, &DeleteTransaction{
		ID:    second.Result.Transaction.ID,
		Owner: f.owner,
	}))

	// remaining: +80 income, -30 expense
	expected := decimal.RequireFromString("550")
	assert.True(t, f.balance(t).Equal(expected), "want %s, got %s", expected, f.balance(t))

	acct := f.store.Account(f.account.ID)
	assert.True(t, acct.Balance.Equal(acct.StartingBalance.Add(decimal.RequireFromString("50"))))
}
