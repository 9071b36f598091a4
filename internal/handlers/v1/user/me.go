package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// MeInput is the Huma input for fetching the authenticated user.
type MeInput struct{}

// MeOutput is the Huma output for fetching the authenticated user.
type MeOutput struct {
	Body User
}

// userGetter is the interface for fetching a user.
type userGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// MeHandler handles GET /v1/user/me.
type MeHandler struct {
	UserService userGetter
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(svc userGetter) *MeHandler {
	return &MeHandler{UserService: svc}
}

// Register registers the current-user endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/v1/user/me",
		Summary:     "Current user",
		Description: "Returns the authenticated user.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *MeInput) (*MeOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	found, err := h.UserService.GetUser(ctx, owner)
	if err != nil {
		return nil, httperr.FromService("failed to get user", err)
	}

	return &MeOutput{Body: fromService(found)}, nil
}
