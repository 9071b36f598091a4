package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// mockProfileUpdater is a mock for profileUpdater.
type mockProfileUpdater struct {
	mock.Mock
}

func (m *mockProfileUpdater) UpdateProfile(ctx context.Context, id uuid.UUID, update service.ProfileUpdate) (*service.User, error) {
	args := m.Called(ctx, id, update)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func newUpdateProfileTestAPI(t *testing.T, owner uuid.UUID, svc profileUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithOwner(ctx.Context(), owner)))
	})
	NewUpdateProfileHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateProfile_Success(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	mockSvc := new(mockProfileUpdater)
	mockSvc.On("UpdateProfile", mock.Anything, owner, mock.MatchedBy(func(update service.ProfileUpdate) bool {
		return update.Name != nil && *update.Name == "Pat Q" && update.Email == nil
	})).Return(&service.User{
		ID:        owner,
		Name:      "Pat Q",
		Email:     "pat@example.com",
		CreatedAt: time.Now(),
	}, nil)

	resp := newUpdateProfileTestAPI(t, owner, mockSvc).Put("/v1/user/profile", map[string]any{
		"name": "Pat Q",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pat Q", body.Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateProfile_PasswordWithoutCurrent(t *testing.T) {
	mockSvc := new(mockProfileUpdater)

	resp := newUpdateProfileTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Put("/v1/user/profile", map[string]any{
		"newPassword": "correct horse",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateProfile")
}

func TestHTTP_UpdateProfile_EmailTaken(t *testing.T) {
	mockSvc := new(mockProfileUpdater)
	mockSvc.On("UpdateProfile", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrConflict)

	resp := newUpdateProfileTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Put("/v1/user/profile", map[string]any{
		"email": "taken@example.com",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	mockSvc := new(mockProfileUpdater)
	mockSvc.On("UpdateProfile", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidCredentials)

	resp := newUpdateProfileTestAPI(t, uuid.Must(uuid.NewV4()), mockSvc).Put("/v1/user/profile", map[string]any{
		"currentPassword": "wrong",
		"newPassword":     "correct horse",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}
