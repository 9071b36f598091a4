package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// The tables below operate directly on the store maps. The store lock is
// already held by the Writer that created them.

type accountTable struct {
	store *Store
}

var _ account.IAccountTable = (*accountTable)(nil)

func (t *accountTable) FindByID(ctx context.Context, id, owner uuid.UUID) (*account.Account, error) {
	a, ok := t.store.accounts[id]
	if !ok || a.UserID != owner {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	clone := *a
	return &clone, nil
}

func (t *accountTable) FindByIDForUpdate(ctx context.Context, id, owner uuid.UUID) (*account.Account, error) {
	// The store lock held by the Writer already excludes other writers.
	return t.FindByID(ctx, id, owner)
}

func (t *accountTable) Insert(ctx context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.store.accounts[id] = &account.Account{
		ID:              id,
		UserID:          create.UserID,
		Name:            create.Name,
		Type:            create.Type,
		Balance:         create.StartingBalance,
		StartingBalance: create.StartingBalance,
		CreatedAt:       time.Now(),
	}
	return id, nil
}

func (t *accountTable) Update(ctx context.Context, a *account.Account) error {
	existing, ok := t.store.accounts[a.ID]
	if !ok {
		return fmt.Errorf("account %s: %w", a.ID, domain.ErrNotFound)
	}
	existing.Name = a.Name
	existing.Type = a.Type
	existing.Balance = a.Balance
	existing.StartingBalance = a.StartingBalance
	return nil
}

func (t *accountTable) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	existing, ok := t.store.accounts[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	existing.Balance = existing.Balance.Add(delta)
	return nil
}

func (t *accountTable) Delete(ctx context.Context, id, owner uuid.UUID) error {
	a, ok := t.store.accounts[id]
	if !ok || a.UserID != owner {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	delete(t.store.accounts, id)
	return nil
}

func (t *accountTable) List(ctx context.Context, owner uuid.UUID) ([]*account.Account, error) {
	var result []*account.Account
	for _, a := range t.store.accounts {
		if a.UserID == owner {
			clone := *a
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type categoryTable struct {
	store *Store
}

var _ category.ICategoryTable = (*categoryTable)(nil)

func (t *categoryTable) FindByID(ctx context.Context, id, owner uuid.UUID) (*category.Category, error) {
	c, ok := t.store.categories[id]
	if !ok || c.UserID != owner {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	clone := *c
	return &clone, nil
}

func (t *categoryTable) ExistsByName(ctx context.Context, owner uuid.UUID, name string, categoryType category.CategoryType, excludeID *uuid.UUID) (bool, error) {
	for _, c := range t.store.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == owner && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (t *categoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	icon := create.Icon
	if icon == "" {
		icon = category.DefaultIcon
	}
	t.store.categories[id] = &category.Category{
		ID:        id,
		UserID:    create.UserID,
		Name:      create.Name,
		Type:      create.Type,
		Icon:      icon,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (t *categoryTable) Update(ctx context.Context, c *category.Category) error {
	existing, ok := t.store.categories[c.ID]
	if !ok {
		return fmt.Errorf("category %s: %w", c.ID, domain.ErrNotFound)
	}
	existing.Name = c.Name
	existing.Type = c.Type
	existing.Icon = c.Icon
	return nil
}

func (t *categoryTable) Delete(ctx context.Context, id, owner uuid.UUID) error {
	c, ok := t.store.categories[id]
	if !ok || c.UserID != owner {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	delete(t.store.categories, id)
	return nil
}

func (t *categoryTable) List(ctx context.Context, owner uuid.UUID) ([]*category.Category, error) {
	var result []*category.Category
	for _, c := range t.store.categories {
		if c.UserID == owner {
			clone := *c
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type transactionTable struct {
	store *Store
}

var _ transaction.ITransactionTable = (*transactionTable)(nil)

func (t *transactionTable) FindByID(ctx context.Context, id, owner uuid.UUID) (*transaction.Transaction, error) {
	tx, ok := t.store.transactions[id]
	if !ok || tx.UserID != owner {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	clone := *tx
	return &clone, nil
}

func (t *transactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.store.transactions[id] = &transaction.Transaction{
		ID:              id,
		UserID:          create.UserID,
		AccountID:       create.AccountID,
		CategoryID:      create.CategoryID,
		Amount:          create.Amount,
		Type:            create.Type,
		Note:            create.Note,
		TransactionDate: create.TransactionDate,
		CreatedAt:       time.Now(),
	}
	return id, nil
}

func (t *transactionTable) Update(ctx context.Context, tx *transaction.Transaction) error {
	existing, ok := t.store.transactions[tx.ID]
	if !ok {
		return fmt.Errorf("transaction %s: %w", tx.ID, domain.ErrNotFound)
	}
	existing.AccountID = tx.AccountID
	existing.CategoryID = tx.CategoryID
	existing.Amount = tx.Amount
	existing.Type = tx.Type
	existing.Note = tx.Note
	existing.TransactionDate = tx.TransactionDate
	return nil
}

func (t *transactionTable) Delete(ctx context.Context, id, owner uuid.UUID) error {
	tx, ok := t.store.transactions[id]
	if !ok || tx.UserID != owner {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	delete(t.store.transactions, id)
	return nil
}

func (t *transactionTable) matches(tx *transaction.Transaction, owner uuid.UUID, filter *transaction.TransactionFilter) bool {
	if tx.UserID != owner {
		return false
	}
	if filter == nil {
		return true
	}
	if filter.AccountID != nil && tx.AccountID != *filter.AccountID {
		return false
	}
	if filter.CategoryID != nil && tx.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.Type != nil && tx.Type != *filter.Type {
		return false
	}
	if filter.DateFrom != nil && tx.TransactionDate.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && tx.TransactionDate.After(*filter.DateTo) {
		return false
	}
	return true
}

func (t *transactionTable) List(ctx context.Context, owner uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var result []*transaction.Transaction
	for _, tx := range t.store.transactions {
		if t.matches(tx, owner, filter) {
			clone := *tx
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionDate.After(result[j].TransactionDate)
	})
	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(result) {
				return nil, nil
			}
			result = result[filter.Offset:]
		}
		if filter.Limit > 0 && len(result) > filter.Limit {
			result = result[:filter.Limit]
		}
	}
	return result, nil
}

func (t *transactionTable) Count(ctx context.Context, owner uuid.UUID, filter *transaction.TransactionFilter) (int64, error) {
	var count int64
	for _, tx := range t.store.transactions {
		if t.matches(tx, owner, filter) {
			count++
		}
	}
	return count, nil
}

func (t *transactionTable) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	for _, tx := range t.store.transactions {
		if tx.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

func (t *transactionTable) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, tx := range t.store.transactions {
		if tx.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (t *transactionTable) SumByType(ctx context.Context, owner uuid.UUID, entryType transaction.EntryType, from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range t.store.transactions {
		if tx.UserID == owner && tx.Type == entryType &&
			!tx.TransactionDate.Before(from) && !tx.TransactionDate.After(to) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (t *transactionTable) CategoryTotals(ctx context.Context, owner uuid.UUID, entryType transaction.EntryType, from, to time.Time) ([]*transaction.CategoryTotal, error) {
	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range t.store.transactions {
		if tx.UserID == owner && tx.Type == entryType &&
			!tx.TransactionDate.Before(from) && !tx.TransactionDate.After(to) {
			totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
		}
	}
	result := make([]*transaction.CategoryTotal, 0, len(totals))
	for id, total := range totals {
		result = append(result, &transaction.CategoryTotal{CategoryID: id, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result, nil
}

type userTable struct {
	store *Store
}

var _ user.IUserTable = (*userTable)(nil)

func (t *userTable) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := t.store.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	clone := *u
	return &clone, nil
}

func (t *userTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range t.store.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (t *userTable) Insert(ctx context.Context, create *user.UserCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	t.store.users[id] = &user.User{
		ID:           id,
		Name:         create.Name,
		Email:        create.Email,
		PasswordHash: create.PasswordHash,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (t *userTable) Update(ctx context.Context, u *user.User) error {
	if _, ok := t.store.users[u.ID]; !ok {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	clone := *u
	t.store.users[u.ID] = &clone
	return nil
}
