package account

import (
	"time"

	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Display name"`
	Type            string `json:"type" doc:"Account type: bank, credit-card, wallet, or other"`
	Balance         string `json:"balance" doc:"Current decimal balance"`
	StartingBalance string `json:"startingBalance" doc:"Decimal balance the account opened with"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(a *service.Account) Account {
	return Account{
		ID:              a.ID.String(),
		Name:            a.Name,
		Type:            string(a.Type),
		Balance:         a.Balance.String(),
		StartingBalance: a.StartingBalance.String(),
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}
