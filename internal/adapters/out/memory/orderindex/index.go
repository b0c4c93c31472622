// Package orderindex keeps the in-memory projection the order board reads.
//
// The index holds one read-model row per order, keyed by order id, and
// answers filtered, sorted views of them synchronously. Role visibility is
// applied before any filter and cannot be widened by one: a driver only
// ever sees assigned orders, a viewer only their own. Filtering and
// sorting stay near-linear in the collection size, so the index remains
// responsive at tens of thousands of rows.
package orderindex

import (
	"sort"
	"sync"

	"freightdesk/internal/core/domain/model/auth"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/order"
)

// Index is the thread-safe order projection. The zero value is not usable;
// create one with NewIndex.
type Index struct {
	mu   sync.RWMutex
	rows map[string]Summary
	sort Sort
}

// NewIndex creates an empty projection. The initial ordering shows the
// most recently created orders first.
func NewIndex() *Index {
	return &Index{
		rows: make(map[string]Summary),
		sort: Sort{Field: SortByCreatedAt, Direction: Descending},
	}
}

// Upsert projects the aggregate into the index, replacing any previous row
// for the same order.
func (i *Index) Upsert(aggregate *order.Order) {
	row := FromOrder(aggregate)

	i.mu.Lock()
	defer i.mu.Unlock()

	i.rows[row.ID.String()] = row
}

// Remove drops the row for the order, if present.
func (i *Index) Remove(id kernel.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.rows, id.String())
}

// Get returns the row for the order and whether it exists.
func (i *Index) Get(id kernel.UUID) (Summary, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	row, ok := i.rows[id.String()]
	return row, ok
}

// Len reports the number of rows held, before any visibility is applied.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.rows)
}

// SetSort selects the sort field. Selecting the field already sorted by
// flips the direction; selecting a new field resets to ascending.
func (i *Index) SetSort(field SortField) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.sort.Field == field {
		if i.sort.Direction == Ascending {
			i.sort.Direction = Descending
		} else {
			i.sort.Direction = Ascending
		}
		return
	}

	i.sort = Sort{Field: field, Direction: Ascending}
}

// Sort returns the current ordering.
func (i *Index) Sort() Sort {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.sort
}

// FilteredSorted returns the rows the user may see, narrowed by the
// filters and ordered by the current sort.
//
// Visibility comes first and no filter bypasses it: Driver sees only rows
// assigned to userID, Viewer only rows owned by userID, Admin and
// Dispatcher see everything. An unknown role sees nothing.
func (i *Index) FilteredSorted(filters Filters, role auth.Role, userID kernel.UUID) []Summary {
	return i.FilteredSortedBy(filters, role, userID, i.Sort())
}

// FilteredSortedBy is FilteredSorted under an explicit ordering. The
// index's own sort is left untouched, so callers that resolve ordering
// per request never share toggle state with each other.
func (i *Index) FilteredSortedBy(
	filters Filters,
	role auth.Role,
	userID kernel.UUID,
	ordering Sort,
) []Summary {
	i.mu.RLock()
	defer i.mu.RUnlock()

	visible := make([]Summary, 0, len(i.rows))
	for _, row := range i.rows {
		if !visibleTo(row, role, userID) {
			continue
		}
		if !filters.matches(row) {
			continue
		}

		visible = append(visible, row)
	}

	sort.SliceStable(visible, func(a, b int) bool {
		c := ordering.compare(visible[a], visible[b])
		if ordering.Direction == Descending {
			return c > 0
		}
		return c < 0
	})

	return visible
}

func visibleTo(row Summary, role auth.Role, userID kernel.UUID) bool {
	switch role {
	case auth.Admin, auth.Dispatcher:
		return true
	case auth.Driver:
		return row.AssignedDriverID != nil && row.AssignedDriverID.IsEqual(userID)
	case auth.Viewer:
		return row.CustomerID.IsEqual(userID)
	case auth.RoleUnknown:
		return false
	default:
		return false
	}
}
