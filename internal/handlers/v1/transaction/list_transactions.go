package transaction

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
	storagetransaction "github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// ListTransactionsBody is the request body for listing transactions. All
// filters are optional.
type ListTransactionsBody struct {
	AccountID  string `json:"accountID,omitempty" doc:"Only entries for this account UUID"`
	CategoryID string `json:"categoryID,omitempty" doc:"Only entries for this category UUID"`
	Type       string `json:"type,omitempty" doc:"Only income or only expense entries"`
	DateFrom   string `json:"dateFrom,omitempty" doc:"RFC3339 inclusive lower bound on transaction date"`
	DateTo     string `json:"dateTo,omitempty" doc:"RFC3339 inclusive upper bound on transaction date"`
	Page       int    `json:"page,omitempty" minimum:"0" doc:"1-based page number, defaults to 1"`
	Limit      int    `json:"limit,omitempty" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	Total        int64         `json:"total" doc:"Total number of matching transactions"`
	Page         int           `json:"page" doc:"1-based page number"`
	Limit        int           `json:"limit" doc:"Page size"`
	TotalPages   int           `json:"totalPages" doc:"Total number of pages"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, owner uuid.UUID, query service.TransactionQuery) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a filtered, offset-paginated list of the authenticated user's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionQuery, error) {
	query := &service.TransactionQuery{
		Page:  input.Body.Page,
		Limit: input.Body.Limit,
	}

	if input.Body.AccountID != "" {
		accountID, err := uuid.FromString(input.Body.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		query.AccountID = &accountID
	}
	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		query.CategoryID = &categoryID
	}
	if input.Body.Type != "" {
		entryType, err := storagetransaction.ParseEntryType(input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		query.Type = &entryType
	}
	if input.Body.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, input.Body.DateFrom)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dateFrom", err)
		}
		query.DateFrom = &from
	}
	if input.Body.DateTo != "" {
		to, err := time.Parse(time.RFC3339, input.Body.DateTo)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dateTo", err)
		}
		query.DateTo = &to
	}

	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, owner, *query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Items))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Items)),
		Total:        page.Total,
		Page:         page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
	}
	for i, tx := range page.Items {
		resp.Transactions[i] = fromService(&tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
