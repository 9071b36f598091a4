package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, processor Processor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// CreateCategory creates a new category for the owner and returns it. An
// empty icon falls back to the default.
func (s *CategoryService) CreateCategory(ctx context.Context, owner uuid.UUID, create CategoryCreate) (*Category, error) {
	icon := create.Icon
	if icon == "" {
		icon = category.DefaultIcon
	}

	action := &actions.CreateCategory{
		Owner: owner,
		Name:  create.Name,
		Type:  create.Type,
		Icon:  icon,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoryFromStorage(action.Result), nil
}

// GetCategory retrieves one of the owner's categories by ID.
func (s *CategoryService) GetCategory(ctx context.Context, owner, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	return categoryFromStorage(row), nil
}

// ListCategories returns all of the owner's categories.
func (s *CategoryService) ListCategories(ctx context.Context, owner uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = *categoryFromStorage(row)
	}
	return converted, nil
}

// UpdateCategory applies an edit to one of the owner's categories and
// returns the updated record.
func (s *CategoryService) UpdateCategory(ctx context.Context, owner, id uuid.UUID, update CategoryUpdate) (*Category, error) {
	action := &actions.UpdateCategory{
		ID:    id,
		Owner: owner,
		Patch: actions.CategoryPatch{
			Name: update.Name,
			Type: update.Type,
			Icon: update.Icon,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return categoryFromStorage(action.Result), nil
}

// DeleteCategory removes one of the owner's categories. Categories that
// still have transactions cannot be deleted.
func (s *CategoryService) DeleteCategory(ctx context.Context, owner, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteCategory{ID: id, Owner: owner})
}
