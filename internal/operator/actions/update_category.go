package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
)

// CategoryPatch carries the fields of a category update request. Nil fields
// keep their current value.
type CategoryPatch struct {
	Name *string
	Type *category.CategoryType
	Icon *string
}

// UpdateCategory edits a category, re-validating name uniqueness against
// the owner's other categories. The type cannot change while transactions
// reference the category, since those entries were validated against it.
type UpdateCategory struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Patch CategoryPatch

	// Result holds the updated category after a successful Perform.
	Result *category.Category
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	cat, err := writer.Categories.FindByID(ctx, a.ID, a.Owner)
	if err != nil {
		return err
	}

	merged := *cat
	if a.Patch.Name != nil {
		if *a.Patch.Name == "" {
			return fmt.Errorf("category name is required: %w", domain.ErrValidation)
		}
		merged.Name = *a.Patch.Name
	}
	if a.Patch.Type != nil {
		if _, err := category.ParseCategoryType(string(*a.Patch.Type)); err != nil {
			return err
		}
		merged.Type = *a.Patch.Type
	}
	if a.Patch.Icon != nil {
		merged.Icon = *a.Patch.Icon
	}

	if merged.Type != cat.Type {
		count, err := writer.Transactions.CountByCategory(ctx, a.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("category has %d transactions, type cannot change: %w", count, domain.ErrConflict)
		}
	}

	if merged.Name != cat.Name || merged.Type != cat.Type {
		exists, err := writer.Categories.ExistsByName(ctx, a.Owner, merged.Name, merged.Type, &a.ID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("category %q already exists for type %s: %w", merged.Name, merged.Type, domain.ErrConflict)
		}
	}

	if err := writer.Categories.Update(ctx, &merged); err != nil {
		return err
	}
	a.Result = &merged
	return nil
}
