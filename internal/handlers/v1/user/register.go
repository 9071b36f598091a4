package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// RegisterBody is the request body for creating a user account.
type RegisterBody struct {
	Name     string `json:"name" doc:"Display name"`
	Email    string `json:"email" required:"true" format:"email" doc:"Email address, unique"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Plaintext password, stored hashed"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registration. The session cookie is
// set on the response.
type RegisterOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      User
}

// registrar is the interface for registering users.
type registrar interface {
	Register(ctx context.Context, name, email, password string) (*service.Session, error)
	SessionMaxAge() int
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	UserService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates a user account and opens a session.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	session, err := h.UserService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService("failed to register", err)
	}

	return &RegisterOutput{
		SetCookie: auth.SessionCookie(session.Token, h.UserService.SessionMaxAge()),
		Body:      fromService(&session.User),
	}, nil
}
