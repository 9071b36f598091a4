package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, owner, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get account",
		Description: "Returns one of the authenticated user's accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	found, err := h.AccountService.GetAccount(ctx, owner, id)
	if err != nil {
		return nil, httperr.FromService("failed to get account", err)
	}

	return &GetAccountOutput{Body: fromService(found)}, nil
}
