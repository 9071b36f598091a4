// Package dashboard serves the aggregated overview endpoint.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/logging"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// CategorySpend is one category's share of the month's expenses.
type CategorySpend struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Resolved category display name"`
	CategoryIcon string `json:"categoryIcon" doc:"Resolved category icon"`
	Total        string `json:"total" doc:"Decimal total spent in the category this month"`
}

// RecentTransaction is a condensed ledger entry for the overview screen.
type RecentTransaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountName     string `json:"accountName" doc:"Resolved account display name"`
	CategoryName    string `json:"categoryName" doc:"Resolved category display name"`
	CategoryIcon    string `json:"categoryIcon" doc:"Resolved category icon"`
	Amount          string `json:"amount" doc:"Positive decimal amount"`
	Type            string `json:"type" doc:"Entry type: income or expense"`
	Note            string `json:"note,omitempty" doc:"Free-form note"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
}

// SummaryResponseBody is the response body for the dashboard summary.
type SummaryResponseBody struct {
	TotalBalance       string              `json:"totalBalance" doc:"Decimal sum of all account balances"`
	MonthIncome        string              `json:"monthIncome" doc:"Decimal income total for the current month"`
	MonthExpense       string              `json:"monthExpense" doc:"Decimal expense total for the current month"`
	ExpenseByCategory  []CategorySpend     `json:"expenseByCategory" doc:"This month's expenses per category, largest first"`
	RecentTransactions []RecentTransaction `json:"recentTransactions" doc:"Most recent ledger entries"`
}

// SummaryInput is the Huma input for the dashboard summary.
type SummaryInput struct{}

// SummaryOutput is the Huma output for the dashboard summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for assembling the dashboard.
type summarizer interface {
	Summary(ctx context.Context, owner uuid.UUID) (*service.DashboardSummary, error)
}

// SummaryHandler handles GET /v1/dashboard/summary.
type SummaryHandler struct {
	DashboardService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{DashboardService: svc}
}

// Register registers the dashboard summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/summary",
		Summary:     "Dashboard summary",
		Description: "Returns the authenticated user's financial overview.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *SummaryInput) (*SummaryOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardSummaryMs")
	}
	summary, err := h.DashboardService.Summary(ctx, owner)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to build dashboard summary", err)
	}

	resp := SummaryResponseBody{
		TotalBalance:       summary.TotalBalance.String(),
		MonthIncome:        summary.MonthIncome.String(),
		MonthExpense:       summary.MonthExpense.String(),
		ExpenseByCategory:  make([]CategorySpend, len(summary.ExpenseByCategory)),
		RecentTransactions: make([]RecentTransaction, len(summary.RecentTransactions)),
	}
	for i, spend := range summary.ExpenseByCategory {
		resp.ExpenseByCategory[i] = CategorySpend{
			CategoryID:   spend.CategoryID.String(),
			CategoryName: spend.CategoryName,
			CategoryIcon: spend.CategoryIcon,
			Total:        spend.Total.String(),
		}
	}
	for i, tx := range summary.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransaction{
			ID:              tx.ID.String(),
			AccountName:     tx.AccountName,
			CategoryName:    tx.CategoryName,
			CategoryIcon:    tx.CategoryIcon,
			Amount:          tx.Amount.String(),
			Type:            string(tx.Type),
			Note:            tx.Note,
			TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
