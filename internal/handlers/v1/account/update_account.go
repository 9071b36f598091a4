package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
	storageaccount "github.com/mahakmahak49793/finance-tracker/internal/storage/account"
)

// UpdateAccountBody is the request body for editing an account. Absent
// fields keep their current value.
type UpdateAccountBody struct {
	Name    *string `json:"name,omitempty" doc:"New display name"`
	Type    *string `json:"type,omitempty" doc:"New account type"`
	Balance *string `json:"balance,omitempty" doc:"Corrected decimal balance; the correction shifts the starting balance, not the ledger"`
}

// UpdateAccountInput is the Huma input for editing an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for editing an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for editing accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, owner, id uuid.UUID, update service.AccountUpdate) (*service.Account, error)
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update account",
		Description: "Edits one of the authenticated user's accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) (*service.AccountUpdate, error) {
	update := &service.AccountUpdate{Name: input.Body.Name}

	if input.Body.Type != nil {
		accountType, err := storageaccount.ParseAccountType(*input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		update.Type = &accountType
	}

	if input.Body.Balance != nil {
		balance, err := decimal.NewFromString(*input.Body.Balance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		update.Balance = &balance
	}

	return update, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.AccountService.UpdateAccount(ctx, owner, id, *update)
	if err != nil {
		return nil, httperr.FromService("failed to update account", err)
	}

	return &UpdateAccountOutput{Body: fromService(updated)}, nil
}
