package transaction

import (
	"time"

	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	AccountName     string `json:"accountName" doc:"Resolved account display name"`
	CategoryID      string `json:"categoryID" doc:"Category UUID"`
	CategoryName    string `json:"categoryName" doc:"Resolved category display name"`
	CategoryIcon    string `json:"categoryIcon" doc:"Resolved category icon"`
	Amount          string `json:"amount" doc:"Positive decimal amount; the type carries the sign"`
	Type            string `json:"type" doc:"Entry type: income or expense"`
	Note            string `json:"note,omitempty" doc:"Free-form note"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		AccountName:     tx.AccountName,
		CategoryID:      tx.CategoryID.String(),
		CategoryName:    tx.CategoryName,
		CategoryIcon:    tx.CategoryIcon,
		Amount:          tx.Amount.String(),
		Type:            string(tx.Type),
		Note:            tx.Note,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
}
