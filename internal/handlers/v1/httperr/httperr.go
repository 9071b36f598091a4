// Package httperr maps service errors onto HTTP status codes.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mahakmahak49793/finance-tracker/internal/domain"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// FromService wraps a service error in a huma error with the status code
// its kind calls for. Unrecognized errors become 500s.
func FromService(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, domain.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, domain.ErrConflict):
		return huma.NewError(http.StatusConflict, msg, err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, "invalid credentials")
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
