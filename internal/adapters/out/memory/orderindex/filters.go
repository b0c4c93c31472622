package orderindex

import (
	"slices"
	"strings"
	"time"

	"freightdesk/internal/core/domain/model/order"
)

// Filters narrows the index projection. Dimensions combine with AND;
// values inside one dimension combine with OR. A zero dimension means
// "no constraint".
type Filters struct {
	// Statuses keeps rows whose status is in the set.
	Statuses []order.Status
	// Priorities keeps rows whose priority is in the set.
	Priorities []order.Priority
	// ServiceLevels keeps rows whose service level is in the set.
	ServiceLevels []order.ServiceLevel
	// Regions keeps rows whose region is in the set, matched exactly.
	Regions []string
	// Search keeps rows whose order number, customer name or region
	// contains the text, case insensitively.
	Search string
	// From keeps rows created at or after this instant.
	From time.Time
	// To keeps rows created through the end of this date, inclusive
	// until 23:59:59.999.
	To time.Time
}

// matches reports whether a row passes every populated dimension.
func (f Filters) matches(row Summary) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, row.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, row.Priority) {
		return false
	}
	if len(f.ServiceLevels) > 0 && !slices.Contains(f.ServiceLevels, row.ServiceLevel) {
		return false
	}
	if len(f.Regions) > 0 && !slices.Contains(f.Regions, row.Region) {
		return false
	}

	if f.Search != "" && !matchesSearch(row, f.Search) {
		return false
	}

	if !f.From.IsZero() && row.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && row.CreatedAt.After(endOfDay(f.To)) {
		return false
	}

	return true
}

func matchesSearch(row Summary, search string) bool {
	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(row.OrderNumber), needle) ||
		strings.Contains(strings.ToLower(row.CustomerName), needle) ||
		strings.Contains(strings.ToLower(row.Region), needle)
}

// endOfDay extends a date to the last representable dashboard instant of
// that day, 23:59:59.999.
func endOfDay(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		23, 59, 59, 999*int(time.Millisecond),
		date.Location(),
	)
}
