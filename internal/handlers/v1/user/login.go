package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/httperr"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in. The session cookie is set
// on the response.
type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      User
}

// authenticator is the interface for verifying credentials.
type authenticator interface {
	Login(ctx context.Context, email, password string) (*service.Session, error)
	SessionMaxAge() int
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Verifies credentials and opens a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	session, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService("failed to login", err)
	}

	return &LoginOutput{
		SetCookie: auth.SessionCookie(session.Token, h.UserService.SessionMaxAge()),
		Body:      fromService(&session.User),
	}, nil
}
