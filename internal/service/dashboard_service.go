package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

const recentTransactionLimit = 10

// DashboardSummary aggregates the owner's finances for the overview screen.
type DashboardSummary struct {
	TotalBalance decimal.Decimal
	// MonthIncome and MonthExpense total the current calendar month.
	MonthIncome  decimal.Decimal
	MonthExpense decimal.Decimal
	// ExpenseByCategory breaks the month's expenses down per category.
	ExpenseByCategory  []CategorySpend
	RecentTransactions []Transaction
}

// CategorySpend is one category's share of the month's expenses.
type CategorySpend struct {
	CategoryID   uuid.UUID
	CategoryName string
	CategoryIcon string
	Total        decimal.Decimal
}

// DashboardService assembles the overview summary. Reads only.
type DashboardService struct {
	storage *storage.Storage
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store}
}

// Summary computes the owner's dashboard: total balance across accounts,
// this month's income and expense totals, the month's expenses grouped by
// category, and the month's most recent ledger entries.
func (s *DashboardService) Summary(ctx context.Context, owner uuid.UUID) (*DashboardSummary, error) {
	monthStart, monthEnd := currentMonth(time.Now())

	accounts, err := s.storage.Accounts.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	totalBalance := decimal.Zero
	for _, a := range accounts {
		totalBalance = totalBalance.Add(a.Balance)
	}

	income, err := s.storage.Transactions.SumByType(ctx, owner, transaction.EntryTypeIncome, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	expense, err := s.storage.Transactions.SumByType(ctx, owner, transaction.EntryTypeExpense, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	totals, err := s.storage.Transactions.CategoryTotals(ctx, owner, transaction.EntryTypeExpense, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	categories, err := s.storage.Categories.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	icons := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		icons[c.ID] = c.Icon
	}

	byCategory := make([]CategorySpend, len(totals))
	for i, row := range totals {
		byCategory[i] = CategorySpend{
			CategoryID:   row.CategoryID,
			CategoryName: names[row.CategoryID],
			CategoryIcon: icons[row.CategoryID],
			Total:        row.Total,
		}
	}

	recentRows, err := s.storage.Transactions.List(ctx, owner, &transaction.TransactionFilter{
		DateFrom: &monthStart,
		DateTo:   &monthEnd,
		Limit:    recentTransactionLimit,
	})
	if err != nil {
		return nil, err
	}

	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}
	recent := make([]Transaction, len(recentRows))
	for i, row := range recentRows {
		recent[i] = Transaction{
			ID:              row.ID,
			AccountID:       row.AccountID,
			AccountName:     accountNames[row.AccountID],
			CategoryID:      row.CategoryID,
			CategoryName:    names[row.CategoryID],
			CategoryIcon:    icons[row.CategoryID],
			Amount:          row.Amount,
			Type:            row.Type,
			Note:            row.Note,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return &DashboardSummary{
		TotalBalance:       totalBalance,
		MonthIncome:        income,
		MonthExpense:       expense,
		ExpenseByCategory:  byCategory,
		RecentTransactions: recent,
	}, nil
}

// currentMonth returns the inclusive bounds of the month containing now,
// in now's location.
func currentMonth(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}
