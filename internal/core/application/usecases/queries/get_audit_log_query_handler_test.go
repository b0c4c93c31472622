package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/pkg/audit"
)

func appendEntries(log *audit.Log, actions ...string) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, action := range actions {
		startedAt := base.Add(time.Duration(i) * time.Minute)
		log.Append(audit.Entry{
			CorrelationID: uuid.New(),
			Action:        action,
			StartedAt:     startedAt,
			FinishedAt:    startedAt.Add(20 * time.Millisecond),
			Duration:      20 * time.Millisecond,
			Success:       true,
		})
	}
}

func Test_NewGetAuditLogQuery(t *testing.T) {
	t.Run("valid with zero limit", func(t *testing.T) {
		query, err := queries.NewGetAuditLogQuery(0)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, 0, query.Limit())
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		_, err := queries.NewGetAuditLogQuery(-1)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetAuditLogQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetAuditLogQueryIsNotConstructed)
	})
}

func Test_GetAuditLogQueryHandler_Handle(t *testing.T) {
	t.Run("returns all entries newest first", func(t *testing.T) {
		log := audit.NewLog(audit.DefaultCapacity)
		appendEntries(log, "CreateOrder", "ConfirmOrder", "ShipOrder")
		handler := queries.NewGetAuditLogQueryHandler(log)

		query, err := queries.NewGetAuditLogQuery(0)
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "ShipOrder", entries[0].Action)
		assert.Equal(t, "ConfirmOrder", entries[1].Action)
		assert.Equal(t, "CreateOrder", entries[2].Action)
	})

	t.Run("limit keeps the most recent entries", func(t *testing.T) {
		log := audit.NewLog(audit.DefaultCapacity)
		appendEntries(log, "CreateOrder", "ConfirmOrder", "ShipOrder", "DeliverOrder")
		handler := queries.NewGetAuditLogQueryHandler(log)

		query, err := queries.NewGetAuditLogQuery(2)
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "DeliverOrder", entries[0].Action)
		assert.Equal(t, "ShipOrder", entries[1].Action)
	})

	t.Run("limit above size returns everything", func(t *testing.T) {
		log := audit.NewLog(audit.DefaultCapacity)
		appendEntries(log, "CreateOrder")
		handler := queries.NewGetAuditLogQueryHandler(log)

		query, err := queries.NewGetAuditLogQuery(10)
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("empty log yields no entries", func(t *testing.T) {
		handler := queries.NewGetAuditLogQueryHandler(audit.NewLog(audit.DefaultCapacity))

		query, err := queries.NewGetAuditLogQuery(0)
		require.NoError(t, err)

		entries, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("zero value query is rejected", func(t *testing.T) {
		handler := queries.NewGetAuditLogQueryHandler(audit.NewLog(audit.DefaultCapacity))

		var query queries.GetAuditLogQuery
		_, err := handler.Handle(context.Background(), query)
		assert.ErrorIs(t, err, queries.ErrGetAuditLogQueryIsNotConstructed)
	})
}
