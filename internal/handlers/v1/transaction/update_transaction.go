package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
	storagetransaction "github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// UpdateTransactionBody is the request body for editing a transaction.
// Absent fields keep their current value; amount, type, and account changes
// reconcile the affected balances.
type UpdateTransactionBody struct {
	AccountID       *string `json:"accountID,omitempty" doc:"New account UUID"`
	CategoryID      *string `json:"categoryID,omitempty" doc:"New category UUID"`
	Amount          *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Type            *string `json:"type,omitempty" doc:"New entry type"`
	Note            *string `json:"note,omitempty" doc:"New note"`
	TransactionDate *string `json:"transactionDate,omitempty" doc:"New RFC3339 transaction date"`
}

// UpdateTransactionInput is the Huma input for editing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for editing a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for editing transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, owner, id uuid.UUID, update service.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Edits one of the authenticated user's transactions, reconciling affected account balances.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput parses and validates the API input.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (*service.TransactionUpdate, error) {
	update := &service.TransactionUpdate{Note: input.Body.Note}

	if input.Body.AccountID != nil {
		accountID, err := uuid.FromString(*input.Body.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		update.AccountID = &accountID
	}
	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		update.CategoryID = &categoryID
	}
	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = &amount
	}
	if input.Body.Type != nil {
		entryType, err := storagetransaction.ParseEntryType(*input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		update.Type = &entryType
	}
	if input.Body.TransactionDate != nil {
		transactionDate, err := time.Parse(time.RFC3339, *input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		update.TransactionDate = &transactionDate
	}

	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, owner, id, *update)
	if err != nil {
		return nil, httperr.FromService("failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
