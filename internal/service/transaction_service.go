package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor Processor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// CreateTransaction records a ledger entry, adjusts the account balance,
// and returns the entry with its references resolved.
func (s *TransactionService) CreateTransaction(ctx context.Context, owner uuid.UUID, create TransactionCreate) (*Transaction, error) {
	action := &actions.CreateTransaction{
		Owner:           owner,
		AccountID:       create.AccountID,
		CategoryID:      create.CategoryID,
		Amount:          create.Amount,
		Type:            create.Type,
		Note:            create.Note,
		TransactionDate: create.TransactionDate,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromResolved(action.Result), nil
}

// GetTransaction retrieves one of the owner's transactions by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, owner, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	converted, err := s.resolve(ctx, owner, []*transaction.Transaction{row})
	if err != nil {
		return nil, err
	}
	return &converted[0], nil
}

// ListTransactions returns one page of the owner's transactions matching
// the query, newest transaction date first, with the total match count.
func (s *TransactionService) ListTransactions(ctx context.Context, owner uuid.UUID, query TransactionQuery) (*TransactionPage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := &transaction.TransactionFilter{
		AccountID:  query.AccountID,
		CategoryID: query.CategoryID,
		Type:       query.Type,
		DateFrom:   query.DateFrom,
		DateTo:     query.DateTo,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	total, err := s.storage.Transactions.Count(ctx, owner, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, owner, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.resolve(ctx, owner, rows)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &TransactionPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateTransaction applies an edit to one of the owner's transactions,
// reconciling the affected account balances, and returns the updated entry.
func (s *TransactionService) UpdateTransaction(ctx context.Context, owner, id uuid.UUID, update TransactionUpdate) (*Transaction, error) {
	action := &actions.UpdateTransaction{
		ID:    id,
		Owner: owner,
		Patch: actions.TransactionPatch{
			Amount:          update.Amount,
			Type:            update.Type,
			AccountID:       update.AccountID,
			CategoryID:      update.CategoryID,
			Note:            update.Note,
			TransactionDate: update.TransactionDate,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromResolved(action.Result), nil
}

// DeleteTransaction removes one of the owner's transactions and reverts its
// contribution from the account balance.
func (s *TransactionService) DeleteTransaction(ctx context.Context, owner, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id, Owner: owner})
}

// resolve joins transactions with the owner's account and category names.
// One listing pass loads each lookup table once instead of querying per row.
func (s *TransactionService) resolve(ctx context.Context, owner uuid.UUID, rows []*transaction.Transaction) ([]Transaction, error) {
	accounts, err := s.storage.Accounts.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}

	categories, err := s.storage.Categories.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	categoryIcons := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
		categoryIcons[c.ID] = c.Icon
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:              row.ID,
			AccountID:       row.AccountID,
			AccountName:     accountNames[row.AccountID],
			CategoryID:      row.CategoryID,
			CategoryName:    categoryNames[row.CategoryID],
			CategoryIcon:    categoryIcons[row.CategoryID],
			Amount:          row.Amount,
			Type:            row.Type,
			Note:            row.Note,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}
	return converted, nil
}

func transactionFromResolved(resolved *actions.ResolvedTransaction) *Transaction {
	row := resolved.Transaction
	return &Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		AccountName:     resolved.Account.Name,
		CategoryID:      row.CategoryID,
		CategoryName:    resolved.Category.Name,
		CategoryIcon:    resolved.Category.Icon,
		Amount:          row.Amount,
		Type:            row.Type,
		Note:            row.Note,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
