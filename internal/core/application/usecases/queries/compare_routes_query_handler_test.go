package queries_test

import (
	"context"
	"regexp"
	"testing"

	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
	"freightdesk/internal/core/domain/services/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompareRoutesQuery(t *testing.T) queries.CompareRoutesQuery {
	t.Helper()

	shanghai, err := kernel.NewGeoPoint(31.2304, 121.4737)
	require.NoError(t, err)
	beijing, err := kernel.NewGeoPoint(39.9042, 116.4074)
	require.NoError(t, err)
	weight, err := kernel.NewWeight(2.5, kernel.Kilograms)
	require.NoError(t, err)

	query, err := queries.NewCompareRoutesQuery(shanghai, beijing, weight, order.Express)
	require.NoError(t, err)

	return query
}

func TestNewCompareRoutesQuery(t *testing.T) {
	t.Run("invalid request rejected", func(t *testing.T) {
		var origin, destination kernel.GeoPoint
		weight, err := kernel.NewWeight(2.5, kernel.Kilograms)
		require.NoError(t, err)

		_, err = queries.NewCompareRoutesQuery(origin, destination, weight, order.Express)

		assert.Error(t, err)
	})

	t.Run("zero query fails validation", func(t *testing.T) {
		var query queries.CompareRoutesQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrCompareRoutesQueryIsNotConstructed)
	})
}

func TestCompareRoutesQueryHandler_Handle(t *testing.T) {
	engine, err := routing.DefaultEngine()
	require.NoError(t, err)
	handler := queries.NewCompareRoutesQueryHandler(engine)

	t.Run("returns one route per strategy in registration order", func(t *testing.T) {
		routes, err := handler.Handle(context.Background(), newCompareRoutesQuery(t))

		require.NoError(t, err)
		require.Len(t, routes, 3)
		assert.Equal(t, "Fastest", routes[0].Strategy)
		assert.Equal(t, "Cheapest", routes[1].Strategy)
		assert.Equal(t, "Balanced", routes[2].Strategy)

		durationFormat := regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)
		for _, route := range routes {
			assert.Greater(t, route.DistanceKm, 0.0)
			assert.Regexp(t, durationFormat, route.Duration)
			assert.Equal(t, "SF", route.RecommendedCarrier)
			assert.NotEmpty(t, route.Path)
		}

		// the fastest route takes the shortest detour, the cheapest the longest
		assert.Less(t, routes[0].DistanceKm, routes[2].DistanceKm)
		assert.Less(t, routes[2].DistanceKm, routes[1].DistanceKm)

		cheapestCostsLess, err := routes[1].Cost.IsLessThan(routes[0].Cost)
		require.NoError(t, err)
		assert.True(t, cheapestCostsLess)
	})

	t.Run("zero query rejected", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.CompareRoutesQuery{})

		assert.ErrorIs(t, err, queries.ErrCompareRoutesQueryIsNotConstructed)
	})
}
