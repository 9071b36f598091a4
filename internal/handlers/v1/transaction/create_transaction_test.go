package transaction

import (
	"context"
	"encoding/json"
	"errors"
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
	storagetransaction "github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

// mockTransactionCreator is a mock for transactionCreator.
type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) CreateTransaction(ctx context.Context, owner uuid.UUID, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, owner, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

// newTestAPI registers the handler against a humatest API with the given
// owner injected on every request context.
func newTestAPI(t *testing.T, owner uuid.UUID, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithOwner(ctx.Context(), owner)))
	})
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	transactionDate := "2025-01-15T10:30:00Z"

	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			AccountID:       accountID.String(),
			CategoryID:      categoryID.String(),
			Amount:          "123.45",
			Type:            "expense",
			Note:            "weekly groceries",
			TransactionDate: transactionDate,
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, accountID, create.AccountID)
	assert.Equal(t, categoryID, create.CategoryID)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, storagetransaction.EntryTypeExpense, create.Type)
	assert.Equal(t, "weekly groceries", create.Note)
	expectedDate, _ := time.Parse(time.RFC3339, transactionDate)
	assert.True(t, create.TransactionDate.Equal(expectedDate))
}

func TestParseCreateTransactionInput_DateDefaultsToNow(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			AccountID:  uuid.Must(uuid.NewV4()).String(),
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Amount:     "5.00",
			Type:       "income",
		},
	}

	before := time.Now()
	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.False(t, create.TransactionDate.Before(before))
	assert.False(t, create.TransactionDate.After(time.Now()))
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, owner, mock.MatchedBy(func(create service.TransactionCreate) bool {
		return create.AccountID == accountID &&
			create.CategoryID == categoryID &&
			create.Amount.Equal(decimal.RequireFromString("12.50")) &&
			create.Type == storagetransaction.EntryTypeExpense
	})).Return(&service.Transaction{
		ID:              txID,
		AccountID:       accountID,
		AccountName:     "Checking",
		CategoryID:      categoryID,
		CategoryName:    "Groceries",
		CategoryIcon:    "FiShoppingCart",
		Amount:          decimal.RequireFromString("12.50"),
		Type:            storagetransaction.EntryTypeExpense,
		TransactionDate: time.Now(),
		CreatedAt:       time.Now(),
	}, nil)

	resp := newTestAPI(t, owner, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  accountID.String(),
		CategoryID: categoryID.String(),
		Amount:     "12.50",
		Type:       "expense",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "Checking", body.AccountName)
	assert.Equal(t, "Groceries", body.CategoryName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// The body must omit the fields outright; a zero-valued struct would
	// serialize them as empty strings, which still count as present.
	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", map[string]any{
		"accountID": uuid.Must(uuid.NewV4()).String(),
		// categoryID, amount, type omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  "not-a-uuid",
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "income",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "not-a-decimal",
		Type:       "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "transfer",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "income",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_UnknownAccount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound)

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "income",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "income",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_NoSession(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// No owner middleware here, so the handler sees an unauthenticated context.
	_, api := humatest.New(t)
	NewCreateTransactionHandler(mockSvc).Register(api)

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       "income",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}
