package category

import (
	"time"

	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// Category is the API response model for a category.
// It is used only for responses, not for request bodies.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Display name, unique per type"`
	Type      string `json:"type" doc:"Category type: income or expense"`
	Icon      string `json:"icon" doc:"Display icon name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c *service.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
