package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// GetCategoryInput is the Huma input for fetching one category.
type GetCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// GetCategoryOutput is the Huma output for fetching one category.
type GetCategoryOutput struct {
	Body Category
}

// categoryGetter is the interface for fetching a single category.
type categoryGetter interface {
	GetCategory(ctx context.Context, owner, id uuid.UUID) (*service.Category, error)
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get category",
		Description: "Returns one of the authenticated user's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	found, err := h.CategoryService.GetCategory(ctx, owner, id)
	if err != nil {
		return nil, httperr.FromService("failed to get category", err)
	}

	return &GetCategoryOutput{Body: fromService(found)}, nil
}
