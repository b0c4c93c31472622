package queries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// DefaultQuoteTimeout bounds how long one carrier may take to answer a
// quote request before it is dropped from the comparison.
const DefaultQuoteTimeout = 3 * time.Second

// RecommendationReasonCheapest is the reason attached to a price-based
// recommendation.
const RecommendationReasonCheapest = "Cheapest"

// ErrNoQuotesAvailable is returned when no carrier produced a quote,
// either because none is registered or every one timed out.
var ErrNoQuotesAvailable = fmt.Errorf(
	"no carrier produced a quote: %w", errs.ErrObjectNotFound)

// GetQuotesQueryHandler fans a quote request out to every registered
// carrier concurrently and aggregates the answers. A carrier that misses
// the per-carrier timeout is dropped from the comparison; any other
// carrier failure fails the whole query, because a silently incomplete
// comparison would misrepresent the market.
//
// Example:
//
//	handler := NewGetQuotesQueryHandler(factory, DefaultQuoteTimeout)
//	comparison, err := handler.Handle(ctx, query)
type GetQuotesQueryHandler struct {
	factory ports.CarrierFactory
	timeout time.Duration
}

// NewGetQuotesQueryHandler creates a quote aggregation handler. A
// non-positive timeout falls back to DefaultQuoteTimeout.
func NewGetQuotesQueryHandler(
	factory ports.CarrierFactory,
	timeout time.Duration,
) GetQuotesQueryHandler {
	if timeout <= 0 {
		timeout = DefaultQuoteTimeout
	}

	return GetQuotesQueryHandler{factory: factory, timeout: timeout}
}

// Handle collects quotes from all carriers and recommends the cheapest.
// Quotes keep the carrier registration order, which also decides price
// ties: the carrier registered first wins.
func (h GetQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesQuery,
) (GetQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuotesQueryResponse{}, err
	}

	request := query.Request()
	adapters := h.factory.ListAll()

	quotes := make([]ports.Quote, len(adapters))
	failures := make([]error, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			quoteCtx, cancel := context.WithTimeout(ctx, h.timeout)
			defer cancel()

			quotes[i], failures[i] = adapter.GetQuote(quoteCtx, request)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return GetQuotesQueryResponse{}, err
	}

	collected := make([]ports.Quote, 0, len(adapters))
	for i, err := range failures {
		if err != nil {
			// the per-carrier deadline expired without the caller
			// going away: drop this carrier, keep the rest
			if errors.Is(err, context.DeadlineExceeded) {
				continue
			}

			return GetQuotesQueryResponse{}, err
		}

		collected = append(collected, quotes[i])
	}

	if len(collected) == 0 {
		return GetQuotesQueryResponse{}, ErrNoQuotesAvailable
	}

	recommended := collected[0]
	for _, quote := range collected[1:] {
		cheaper, err := quote.Price.IsLessThan(recommended.Price)
		if err != nil {
			return GetQuotesQueryResponse{}, err
		}
		if cheaper {
			recommended = quote
		}
	}

	return GetQuotesQueryResponse{
		Quotes:      collected,
		Recommended: recommended,
		Reason:      RecommendationReasonCheapest,
	}, nil
}
