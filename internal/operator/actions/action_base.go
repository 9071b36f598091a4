package actions

import (
	"context"

	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
