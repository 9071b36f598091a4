package operator

import (
	"context"

	"github.com/mahakmahak49793/finance-tracker/internal/operator/actions"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

// WriteStarter opens a transactional writer. Satisfied by *storage.Storage.
type WriteStarter interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue. Each item runs
// inside its own database transaction: the action either commits in full or
// rolls back in full.
type Operator struct {
	storage WriteStarter
	queue   chan ActionItem
}

func NewOperator(s WriteStarter, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
