// Package memory provides an in-memory implementation of the storage table
// interfaces with all-or-nothing write semantics. It backs tests that
// exercise multi-step mutations without a database.
package memory

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/account"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/transaction"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/user"
)

// Store holds all entity records in maps. Write hands out a Writer holding
// the store lock until Commit or Rollback, so concurrent writers serialize
// the same way row locks serialize them in the database, and Rollback
// restores the pre-write snapshot.
type Store struct {
	mu sync.Mutex

	accounts     map[uuid.UUID]*account.Account
	categories   map[uuid.UUID]*category.Category
	transactions map[uuid.UUID]*transaction.Transaction
	users        map[uuid.UUID]*user.User
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[uuid.UUID]*account.Account),
		categories:   make(map[uuid.UUID]*category.Category),
		transactions: make(map[uuid.UUID]*transaction.Transaction),
		users:        make(map[uuid.UUID]*user.User),
	}
}

// Write locks the store and returns a transactional Writer over it.
func (s *Store) Write(ctx context.Context) (*storage.Writer, error) {
	s.mu.Lock()
	tx := &memTx{store: s, snapshot: s.snapshot()}
	return storage.NewWriterWithTables(tx,
		&accountTable{store: s},
		&categoryTable{store: s},
		&transactionTable{store: s},
		&userTable{store: s},
	), nil
}

// Storage returns the store's tables wired into the standard Storage
// fields, for read paths. Mutations still go through Write.
func (s *Store) Storage() *storage.Storage {
	return &storage.Storage{
		Accounts:     &accountTable{store: s},
		Categories:   &categoryTable{store: s},
		Transactions: &transactionTable{store: s},
		Users:        &userTable{store: s},
	}
}

type snapshot struct {
	accounts     map[uuid.UUID]*account.Account
	categories   map[uuid.UUID]*category.Category
	transactions map[uuid.UUID]*transaction.Transaction
	users        map[uuid.UUID]*user.User
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		accounts:     make(map[uuid.UUID]*account.Account, len(s.accounts)),
		categories:   make(map[uuid.UUID]*category.Category, len(s.categories)),
		transactions: make(map[uuid.UUID]*transaction.Transaction, len(s.transactions)),
		users:        make(map[uuid.UUID]*user.User, len(s.users)),
	}
	for id, a := range s.accounts {
		clone := *a
		snap.accounts[id] = &clone
	}
	for id, c := range s.categories {
		clone := *c
		snap.categories[id] = &clone
	}
	for id, t := range s.transactions {
		clone := *t
		snap.transactions[id] = &clone
	}
	for id, u := range s.users {
		clone := *u
		snap.users[id] = &clone
	}
	return snap
}

type memTx struct {
	store    *Store
	snapshot snapshot
	done     bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.accounts = t.snapshot.accounts
	t.store.categories = t.snapshot.categories
	t.store.transactions = t.snapshot.transactions
	t.store.users = t.snapshot.users
	t.store.mu.Unlock()
	return nil
}

// SeedAccount inserts an account record directly, bypassing transactions.
func (s *Store) SeedAccount(a *account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *a
	s.accounts[a.ID] = &clone
}

// SeedCategory inserts a category record directly, bypassing transactions.
func (s *Store) SeedCategory(c *category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *c
	s.categories[c.ID] = &clone
}

// SeedTransaction inserts a transaction record directly, bypassing transactions.
func (s *Store) SeedTransaction(t *transaction.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *t
	s.transactions[t.ID] = &clone
}

// SeedUser inserts a user record directly, bypassing transactions.
func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *u
	s.users[u.ID] = &clone
}

// Account returns a copy of the stored account, or nil.
func (s *Store) Account(id uuid.UUID) *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil
	}
	clone := *a
	return &clone
}

// Transaction returns a copy of the stored transaction, or nil.
func (s *Store) Transaction(id uuid.UUID) *transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil
	}
	clone := *t
	return &clone
}

// Category returns a copy of the stored category, or nil.
func (s *Store) Category(id uuid.UUID) *category.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil
	}
	clone := *c
	return &clone
}

// TransactionCount returns the number of stored transactions.
func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}
