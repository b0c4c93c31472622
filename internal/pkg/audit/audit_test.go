package audit_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"freightdesk/internal/pkg/audit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWrap_records_successful_operation(t *testing.T) {
	log := audit.NewLog(audit.DefaultCapacity)

	var seenCorrelation uuid.UUID
	cancelOrder := audit.Wrap(log, discardLogger(), "CancelOrder",
		func(ctx context.Context, correlationID uuid.UUID, reason string) (string, error) {
			seenCorrelation = correlationID
			return "cancelled: " + reason, nil
		})

	result, err := cancelOrder(context.Background(), "client requested")
	require.NoError(t, err)
	assert.Equal(t, "cancelled: client requested", result)

	entries := log.Entries()
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "CancelOrder", entry.Action)
	assert.True(t, entry.Success)
	assert.Empty(t, entry.ErrorMessage)
	assert.NotEqual(t, uuid.Nil, entry.CorrelationID)
	assert.Equal(t, seenCorrelation, entry.CorrelationID)
	assert.False(t, entry.StartedAt.IsZero())
	assert.False(t, entry.FinishedAt.Before(entry.StartedAt))
	assert.GreaterOrEqual(t, entry.Duration, time.Duration(0))
}

func TestWrap_rethrows_error_unchanged(t *testing.T) {
	log := audit.NewLog(audit.DefaultCapacity)
	sentinel := errors.New("order already shipped")

	confirmOrder := audit.Wrap(log, discardLogger(), "ConfirmOrder",
		func(ctx context.Context, correlationID uuid.UUID, in int) (int, error) {
			return 0, sentinel
		})

	_, err := confirmOrder(context.Background(), 42)
	assert.ErrorIs(t, err, sentinel)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, sentinel.Error(), entries[0].ErrorMessage)
}

func TestWrap_draws_fresh_correlation_id_per_call(t *testing.T) {
	log := audit.NewLog(audit.DefaultCapacity)

	op := audit.Wrap(log, discardLogger(), "CreateOrder",
		func(ctx context.Context, correlationID uuid.UUID, in struct{}) (uuid.UUID, error) {
			return correlationID, nil
		})

	first, err := op(context.Background(), struct{}{})
	require.NoError(t, err)
	second, err := op(context.Background(), struct{}{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLog_evicts_oldest_beyond_capacity(t *testing.T) {
	log := audit.NewLog(3)

	op := audit.Wrap(log, discardLogger(), "ShipOrder",
		func(ctx context.Context, correlationID uuid.UUID, in int) (int, error) {
			if in%2 == 1 {
				return 0, fmt.Errorf("attempt %d failed", in)
			}
			return in, nil
		})

	for i := 0; i < 5; i++ {
		_, _ = op(context.Background(), i)
	}

	entries := log.Entries()
	require.Len(t, entries, 3)

	// Newest first: attempts 4, 3, 2 survive, 0 and 1 are evicted.
	assert.True(t, entries[0].Success)
	assert.False(t, entries[1].Success)
	assert.Equal(t, "attempt 3 failed", entries[1].ErrorMessage)
	assert.True(t, entries[2].Success)
	assert.Equal(t, 3, log.Len())
}

func TestNewLog_falls_back_to_default_capacity(t *testing.T) {
	log := audit.NewLog(0)

	op := audit.Wrap(log, discardLogger(), "Noop",
		func(ctx context.Context, correlationID uuid.UUID, in struct{}) (struct{}, error) {
			return in, nil
		})

	for i := 0; i < audit.DefaultCapacity+10; i++ {
		_, err := op(context.Background(), struct{}{})
		require.NoError(t, err)
	}

	assert.Equal(t, audit.DefaultCapacity, log.Len())
}
