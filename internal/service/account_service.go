package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor Processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor Processor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// CreateAccount creates a new account for the owner and returns it.
func (s *AccountService) CreateAccount(ctx context.Context, owner uuid.UUID, create AccountCreate) (*Account, error) {
	action := &actions.CreateAccount{
		Owner:           owner,
		Name:            create.Name,
		Type:            create.Type,
		StartingBalance: create.StartingBalance,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Result), nil
}

// GetAccount retrieves one of the owner's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, owner, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	return accountFromStorage(row), nil
}

// ListAccounts returns all of the owner's accounts, newest first.
func (s *AccountService) ListAccounts(ctx context.Context, owner uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = *accountFromStorage(row)
	}
	return converted, nil
}

// UpdateAccount applies an edit to one of the owner's accounts and returns
// the updated record.
func (s *AccountService) UpdateAccount(ctx context.Context, owner, id uuid.UUID, update AccountUpdate) (*Account, error) {
	action := &actions.UpdateAccount{
		ID:    id,
		Owner: owner,
		Patch: actions.AccountPatch{
			Name:    update.Name,
			Type:    update.Type,
			Balance: update.Balance,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Result), nil
}

// DeleteAccount removes one of the owner's accounts. Accounts that still
// have transactions cannot be deleted.
func (s *AccountService) DeleteAccount(ctx context.Context, owner, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{ID: id, Owner: owner})
}
