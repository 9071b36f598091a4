package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
)

// LogoutInput is the Huma input for logging out.
type LogoutInput struct{}

// LogoutOutput is the Huma output for logging out. The session cookie is
// cleared on the response.
type LogoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct{}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/v1/auth/logout",
		Summary:     "Logout",
		Description: "Closes the session by clearing the session cookie.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, _ *LogoutInput) (*LogoutOutput, error) {
	return &LogoutOutput{SetCookie: auth.ClearSessionCookie()}, nil
}
