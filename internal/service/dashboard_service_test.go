package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

func TestDashboardSummary(t *testing.T) {
	f := newLedgerFixture(t, "1000")
	ctx := context.Background()

	second, err := f.svc.Account.CreateAccount(ctx, f.owner, AccountCreate{
		Name:            "Savings",
		Type:            account.AccountTypeBank,
		StartingBalance: decimal.RequireFromString("500"),
	})
	assert.NoError(t, err)

	assert.True(t, second.Balance.Equal(decimal.RequireFromString("500")))

	rent, err := f.svc.Category.CreateCategory(ctx, f.owner, CategoryCreate{
		Name: "Rent",
		Type: category.CategoryTypeExpense,
	})
	assert.NoError(t, err)

	now := time.Now()
	monthStart, _ := currentMonth(now)
	lastMonth := monthStart.AddDate(0, 0, -1)
	for _, tc := range []struct {
		cat    *Category
		typ    transaction.EntryType
		amount string
		date   time.Time
	}{
		{f.salary, transaction.EntryTypeIncome, "300", now},
		{f.food, transaction.EntryTypeExpense, "40", now},
		{rent, transaction.EntryTypeExpense, "120", now},
		// outside the current month, excluded from totals and recents
		{f.salary, transaction.EntryTypeIncome, "999", lastMonth},
	} {
		_, err := f.svc.Transaction.CreateTransaction(ctx, f.owner, TransactionCreate{
			AccountID:       f.acct.ID,
			CategoryID:      tc.cat.ID,
			Amount:          decimal.RequireFromString(tc.amount),
			Type:            tc.typ,
			TransactionDate: tc.date,
		})
		assert.NoError(t, err)
	}

	summary, err := f.svc.Dashboard.Summary(ctx, f.owner)
	assert.NoError(t, err)

	// 1000 + 300 - 40 - 120 + 999 across the first account, plus 500
	assert.True(t, summary.TotalBalance.Equal(decimal.RequireFromString("2639")),
		"got total %s", summary.TotalBalance)
	assert.True(t, summary.MonthIncome.Equal(decimal.RequireFromString("300")))
	assert.True(t, summary.MonthExpense.Equal(decimal.RequireFromString("160")))

	assert.Len(t, summary.ExpenseByCategory, 2)
	// largest first
	assert.Equal(t, "Rent", summary.ExpenseByCategory[0].CategoryName)
	assert.True(t, summary.ExpenseByCategory[0].Total.Equal(decimal.RequireFromString("120")))
	assert.Equal(t, "Food", summary.ExpenseByCategory[1].CategoryName)

	assert.Len(t, summary.RecentTransactions, 3)
	assert.Equal(t, "Checking", summary.RecentTransactions[0].AccountName)
	for _, tx := range summary.RecentTransactions {
		assert.False(t, tx.TransactionDate.Before(monthStart),
			"entry dated %s leaked into the current month", tx.TransactionDate)
	}
}

func TestDashboardSummary_RecentsExcludePriorMonths(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	monthStart, _ := currentMonth(time.Now())
	lastMonth := monthStart.AddDate(0, 0, -1)
	_, err := f.svc.Transaction.CreateTransaction(ctx, f.owner, TransactionCreate{
		AccountID:       f.acct.ID,
		CategoryID:      f.salary.ID,
		Amount:          decimal.RequireFromString("999"),
		Type:            transaction.EntryTypeIncome,
		TransactionDate: lastMonth,
	})
	assert.NoError(t, err)

	summary, err := f.svc.Dashboard.Summary(ctx, f.owner)
	assert.NoError(t, err)

	// the entry still counts toward the balance, but not the month view
	assert.True(t, summary.TotalBalance.Equal(decimal.RequireFromString("999")))
	assert.True(t, summary.MonthIncome.IsZero())
	assert.Empty(t, summary.RecentTransactions)
}

func TestDashboardSummary_EmptyOwner(t *testing.T) {
	svc, _, _ := newTestService(t)

	summary, err := svc.Dashboard.Summary(context.Background(), uuid.Must(uuid.NewV4()))

	assert.NoError(t, err)
	assert.True(t, summary.TotalBalance.IsZero())
	assert.True(t, summary.MonthIncome.IsZero())
	assert.True(t, summary.MonthExpense.IsZero())
	assert.Empty(t, summary.ExpenseByCategory)
	assert.Empty(t, summary.RecentTransactions)
}
