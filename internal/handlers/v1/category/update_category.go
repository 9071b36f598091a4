package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
	storagecategory "github.com/mahakmahak49793/finance-tracker/internal/storage/category"
)

// UpdateCategoryBody is the request body for editing a category. Absent
// fields keep their current value.
type UpdateCategoryBody struct {
	Name *string `json:"name,omitempty" doc:"New display name"`
	Type *string `json:"type,omitempty" doc:"New category type; only allowed while no transactions reference the category"`
	Icon *string `json:"icon,omitempty" doc:"New display icon name"`
}

// UpdateCategoryInput is the Huma input for editing a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for editing a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for editing categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, owner, id uuid.UUID, update service.CategoryUpdate) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Edits one of the authenticated user's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update := service.CategoryUpdate{Name: input.Body.Name, Icon: input.Body.Icon}
	if input.Body.Type != nil {
		categoryType, err := storagecategory.ParseCategoryType(*input.Body.Type)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
		}
		update.Type = &categoryType
	}

	updated, err := h.CategoryService.UpdateCategory(ctx, owner, id, update)
	if err != nil {
		return nil, httperr.FromService("failed to update category", err)
	}

	return &UpdateCategoryOutput{Body: fromService(updated)}, nil
}
