package service

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/operator"
	"github.com/mahakmahak49793/finance-tracker/internal/storage/memory"
)

// newTestService wires the full service stack over the in-memory backend
// with a real operator queue, so tests cover the same write path as
// production.
func newTestService(t *testing.T) (*Service, *memory.Store, uuid.UUID) {
	t.Helper()

	store := memory.NewStore()
	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	sessions := auth.NewSessions("service-test-secret", time.Hour)
	svc := NewService(store.Storage(), delegator, sessions)
	return svc, store, uuid.Must(uuid.NewV4())
}
