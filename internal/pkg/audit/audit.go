// Package audit decorates mutating operations with traceability: every
// wrapped call gets a correlation id, start and end timestamps, a success
// flag and a spot in a capped in-memory log. The wrapper never changes the
// outcome of the operation it decorates; errors pass through unchanged.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries a log keeps before evicting the
// oldest.
const DefaultCapacity = 50

// Entry records one audited operation.
type Entry struct {
	// CorrelationID is unique per logical operation and is handed to the
	// wrapped function so downstream calls can carry it along.
	CorrelationID uuid.UUID
	// Action is the operation name, e.g. "CancelOrder".
	Action string
	// StartedAt and FinishedAt bound the operation.
	StartedAt  time.Time
	FinishedAt time.Time
	// Duration is FinishedAt minus StartedAt.
	Duration time.Duration
	// Success reports whether the operation returned without error.
	Success bool
	// ErrorMessage holds the error text of a failed operation.
	ErrorMessage string
}

// Log is a process-wide, thread-safe ring of audit entries. Beyond the
// capacity the oldest entry is evicted. The log is in-memory only and
// starts empty on every process start.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// NewLog creates an audit log holding at most capacity entries. A capacity
// below one falls back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Log{capacity: capacity}
}

// Append records an entry, evicting the oldest beyond capacity.
func (l *Log) Append(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := make([]Entry, len(l.entries))
	for i, entry := range l.entries {
		copied[len(l.entries)-1-i] = entry
	}

	return copied
}

// Len reports the number of entries currently held.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Operation is a mutating function under audit. The correlation id of the
// surrounding audit entry is threaded in explicitly so the operation can
// attach it to anything it touches.
type Operation[In, Out any] func(ctx context.Context, correlationID uuid.UUID, in In) (Out, error)

// Wrap decorates an operation with auditing. Each invocation draws a fresh
// correlation id, times the call, appends one entry to the log and reports
// the outcome through the logger. The operation's result and error are
// returned unchanged.
func Wrap[In, Out any](
	log *Log,
	logger *slog.Logger,
	action string,
	operation Operation[In, Out],
) func(ctx context.Context, in In) (Out, error) {
	return func(ctx context.Context, in In) (Out, error) {
		correlationID := uuid.New()
		startedAt := time.Now().UTC()

		out, err := operation(ctx, correlationID, in)

		finishedAt := time.Now().UTC()
		entry := Entry{
			CorrelationID: correlationID,
			Action:        action,
			StartedAt:     startedAt,
			FinishedAt:    finishedAt,
			Duration:      finishedAt.Sub(startedAt),
			Success:       err == nil,
		}
		if err != nil {
			entry.ErrorMessage = err.Error()
		}

		log.Append(entry)

		if err != nil {
			logger.ErrorContext(ctx, "audited operation failed",
				slog.String("action", action),
				slog.String("correlation_id", correlationID.String()),
				slog.Duration("duration", entry.Duration),
				slog.String("error", err.Error()),
			)
			return out, err
		}

		logger.InfoContext(ctx, "audited operation completed",
			slog.String("action", action),
			slog.String("correlation_id", correlationID.String()),
			slog.Duration("duration", entry.Duration),
		)

		return out, nil
	}
}
