package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      category.CategoryType
	Icon      string
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	Name string
	Type category.CategoryType
	Icon string
}

// CategoryUpdate carries the changed fields of a category edit. Nil fields
// keep their current value.
type CategoryUpdate struct {
	Name *string
	Type *category.CategoryType
	Icon *string
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		Icon:      row.Icon,
		CreatedAt: row.CreatedAt,
	}
}
