package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
	storageaccount "github.com/mahakmahak49793/finance-tracker/internal/storage/account"
)

// mockAccountCreator is a mock for accountCreator.
type mockAccountCreator struct {
	mock.Mock
}

func (m *mockAccountCreator) CreateAccount(ctx context.Context, owner uuid.UUID, create service.AccountCreate) (*service.Account, error) {
	args := m.Called(ctx, owner, create)
	account, _ := args.Get(0).(*service.Account)
	return account, args.Error(1)
}

func newTestAPI(t *testing.T, owner uuid.UUID, svc accountCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithOwner(ctx.Context(), owner)))
	})
	NewCreateAccountHandler(svc).Register(api)
	return api
}

func TestParseCreateAccountInput_BalanceDefaultsToZero(t *testing.T) {
	input := &CreateAccountInput{
		Body: CreateAccountBody{Name: "Wallet", Type: "wallet"},
	}

	create, err := parseCreateAccountInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "Wallet", create.Name)
	assert.Equal(t, storageaccount.AccountTypeWallet, create.Type)
	assert.True(t, create.StartingBalance.IsZero())
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountCreator)
	mockSvc.On("CreateAccount", mock.Anything, owner, mock.MatchedBy(func(create service.AccountCreate) bool {
		return create.Name == "Checking" &&
			create.Type == storageaccount.AccountTypeBank &&
			create.StartingBalance.Equal(decimal.RequireFromString("250.00"))
	})).Return(&service.Account{
		ID:              accountID,
		Name:            "Checking",
		Type:            storageaccount.AccountTypeBank,
		Balance:         decimal.RequireFromString("250.00"),
		StartingBalance: decimal.RequireFromString("250.00"),
		CreatedAt:       time.Now(),
	}, nil)

	resp := newTestAPI(t, owner, mockSvc).Post("/v1/account", CreateAccountBody{
		Name:            "Checking",
		Type:            "bank",
		StartingBalance: "250.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.ID)
	assert.Equal(t, "bank", body.Type)
	assert.Equal(t, "250", body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_UnknownType(t *testing.T) {
	mockSvc := new(mockAccountCreator)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/account", CreateAccountBody{
		Name: "Checking",
		Type: "checking",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	mockSvc := new(mockAccountCreator)

	// The body must omit name outright; a zero-valued struct would
	// serialize it as an empty string, which still counts as present.
	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/account", map[string]any{
		"type": "bank",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_ValidationError(t *testing.T) {
	mockSvc := new(mockAccountCreator)
	mockSvc.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/account", CreateAccountBody{
		Name: "  ",
		Type: "bank",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}
