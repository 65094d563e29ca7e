// Package memory keeps every record in process memory. It backs tests and
// STORAGE_DRIVER=memory development runs; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
)

type txKey struct{}

type transactor struct {
	mu sync.Mutex
}

// NewTransactor serializes units of work on one process-wide mutex. Writes
// are applied immediately, so a failing fn keeps what it already wrote.
func NewTransactor() database.Transactor {
	return &transactor{}
}

// WithinTransaction implements database.Transactor.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, t))
}
