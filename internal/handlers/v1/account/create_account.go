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

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name            string `json:"name" required:"true" doc:"Display name"`
	Type            string `json:"type" required:"true" doc:"Account type: bank, credit-card, wallet, or other"`
	StartingBalance string `json:"startingBalance" doc:"Decimal opening balance, defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, owner uuid.UUID, create service.AccountCreate) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account for the authenticated user.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (*service.AccountCreate, error) {
	accountType, err := storageaccount.ParseAccountType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	startingBalance := decimal.Zero
	if input.Body.StartingBalance != "" {
		startingBalance, err = decimal.NewFromString(input.Body.StartingBalance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
		}
	}

	return &service.AccountCreate{
		Name:            input.Body.Name,
		Type:            accountType,
		StartingBalance: startingBalance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.AccountService.CreateAccount(ctx, owner, *create)
	if err != nil {
		return nil, httperr.FromService("failed to create account", err)
	}

	return &CreateAccountOutput{Body: fromService(created)}, nil
}
