package commands

import (
	"fmt"
	"sync"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
)

// ErrOrderMutationInProgress is returned when a second mutation of the
// same order arrives while the first is still running. The caller should
// retry once the running mutation has settled.
var ErrOrderMutationInProgress = fmt.Errorf(
	"another mutation of this order is in progress: %w", errs.ErrVersionIsInvalid)

// InflightRegistry serializes mutations per order: at most one mutating
// command runs against a given order at a time, across every handler
// sharing the registry. The optimistic version check in the repository
// remains the backstop for writers on other processes.
type InflightRegistry struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewInflightRegistry creates an empty registry. One instance is shared by
// every mutating command handler.
func NewInflightRegistry() *InflightRegistry {
	return &InflightRegistry{ids: make(map[string]struct{})}
}

// Acquire claims the order for one mutation. Returns
// ErrOrderMutationInProgress if another mutation currently holds it.
func (r *InflightRegistry) Acquire(id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, held := r.ids[key]; held {
		return fmt.Errorf("%w: order %s", ErrOrderMutationInProgress, key)
	}

	r.ids[key] = struct{}{}
	return nil
}

// Release frees the order for the next mutation. Releasing an unheld order
// is a no-op.
func (r *InflightRegistry) Release(id kernel.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ids, id.String())
}
