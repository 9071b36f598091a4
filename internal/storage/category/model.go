package category

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
)

// CategoryType tags a category as collecting income or expenses.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// ParseCategoryType validates a raw category type string.
func ParseCategoryType(raw string) (CategoryType, error) {
	switch CategoryType(raw) {
	case CategoryTypeIncome, CategoryTypeExpense:
		return CategoryType(raw), nil
	}
	return "", fmt.Errorf("category type %q: %w", raw, domain.ErrValidation)
}

// DefaultIcon is used when a category is created without a display icon.
const DefaultIcon = "FiTag"

// Category represents a category record. Name is unique per
// (owner, type) pair.
type Category struct {
	ID        uuid.UUID    `db:"id"`
	UserID    uuid.UUID    `db:"user_id"`
	Name      string       `db:"name"`
	Type      CategoryType `db:"type"`
	Icon      string       `db:"icon"`
	CreatedAt time.Time    `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Type   CategoryType
	Icon   string
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ICategoryTable interface {
	FindByID(ctx context.Context, id, owner uuid.UUID) (*Category, error)
	// ExistsByName reports whether the owner already has a category with the
	// given name and type, excluding excludeID when non-nil.
	ExistsByName(ctx context.Context, owner uuid.UUID, name string, categoryType CategoryType, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id, owner uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID) ([]*Category, error)
}
