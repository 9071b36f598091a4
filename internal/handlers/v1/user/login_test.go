package user

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

func newLoginTestAPI(t *testing.T, svc authenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	session := testSession("pat@example.com")

	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, "pat@example.com", "hunter2hunter2").Return(session, nil)
	mockSvc.On("SessionMaxAge").Return(3600)

	resp := newLoginTestAPI(t, mockSvc).Post("/v1/auth/login", LoginBody{
		Email:    "pat@example.com",
		Password: "hunter2hunter2",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Set-Cookie"), "token=session-token")

	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pat@example.com", body.Email)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_WrongPassword(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCredentials)

	resp := newLoginTestAPI(t, mockSvc).Post("/v1/auth/login", LoginBody{
		Email:    "pat@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Empty(t, resp.Header().Get("Set-Cookie"))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_MissingFields(t *testing.T) {
	mockSvc := new(mockUserService)

	// The body must omit the fields outright; a zero-valued struct would
	// serialize them as empty strings, which still count as present.
	resp := newLoginTestAPI(t, mockSvc).Post("/v1/auth/login", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Login")
}
