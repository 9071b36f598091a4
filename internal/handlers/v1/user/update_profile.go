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

// UpdateProfileBody is the request body for editing the profile. Omitted
// fields keep their current value.
type UpdateProfileBody struct {
	Name            *string `json:"name,omitempty" doc:"New display name"`
	Email           *string `json:"email,omitempty" format:"email" doc:"New email address, unique"`
	CurrentPassword string  `json:"currentPassword,omitempty" doc:"Current password, required when changing the password"`
	NewPassword     string  `json:"newPassword,omitempty" minLength:"8" doc:"New plaintext password, stored hashed"`
}

// UpdateProfileInput is the Huma input for editing the profile.
type UpdateProfileInput struct {
	Body UpdateProfileBody
}

// UpdateProfileOutput is the Huma output for editing the profile.
type UpdateProfileOutput struct {
	Body User
}

// profileUpdater is the interface for editing a user's profile.
type profileUpdater interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, update service.ProfileUpdate) (*service.User, error)
}

// UpdateProfileHandler handles PUT /v1/user/profile.
type UpdateProfileHandler struct {
	UserService profileUpdater
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(svc profileUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{UserService: svc}
}

// Register registers the profile update endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/user/profile",
		Summary:     "Update profile",
		Description: "Edits the authenticated user's name, email, or password. A password change requires the current password.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	owner, ok := auth.Owner(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	if input.Body.NewPassword != "" && input.Body.CurrentPassword == "" {
		return nil, huma.NewError(http.StatusBadRequest, "currentPassword is required to change the password")
	}

	updated, err := h.UserService.UpdateProfile(ctx, owner, service.ProfileUpdate{
		Name:            input.Body.Name,
		Email:           input.Body.Email,
		CurrentPassword: input.Body.CurrentPassword,
		NewPassword:     input.Body.NewPassword,
	})
	if err != nil {
		return nil, httperr.FromService("failed to update profile", err)
	}

	return &UpdateProfileOutput{Body: fromService(updated)}, nil
}
