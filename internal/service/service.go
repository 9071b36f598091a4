package service

import (
	"context"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

// Processor runs a mutation action atomically. Satisfied by
// *operator.OperatorDelegator.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	User        *UserService
	Dashboard   *DashboardService
}

// NewService creates a new Service. Reads go straight to storage; writes go
// through the processor.
func NewService(store *storage.Storage, processor Processor, sessions *auth.Sessions) *Service {
	return &Service{
		Account:     NewAccountService(store, processor),
		Category:    NewCategoryService(store, processor),
		Transaction: NewTransactionService(store, processor),
		User:        NewUserService(store, processor, sessions),
		Dashboard:   NewDashboardService(store),
	}
}
