package user

import (
	"time"

	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// User is the API response model for a user. The password hash never
// appears in responses.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Email address"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(u *service.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
