package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
)

// CreateCategory creates a category, enforcing name uniqueness within the
// owner's categories of the same type.
type CreateCategory struct {
	Owner uuid.UUID
	Name  string
	Type  category.CategoryType
	Icon  string

	// Result holds the created category after a successful Perform.
	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return fmt.Errorf("category name is required: %w", domain.ErrValidation)
	}
	if _, err := category.ParseCategoryType(string(a.Type)); err != nil {
		return err
	}

	exists, err := writer.Categories.ExistsByName(ctx, a.Owner, a.Name, a.Type, nil)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("category %q already exists for type %s: %w", a.Name, a.Type, domain.ErrConflict)
	}

	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		UserID: a.Owner,
		Name:   a.Name,
		Type:   a.Type,
		Icon:   a.Icon,
	})
	if err != nil {
		return err
	}

	created, err := writer.Categories.FindByID(ctx, id, a.Owner)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}
