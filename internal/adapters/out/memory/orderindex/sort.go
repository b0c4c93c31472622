package orderindex

import (
	"strings"
)

// SortField identifies the column a projection is ordered by.
type SortField int

const (
	// SortFieldUnknown is the zero value and sorts nothing.
	SortFieldUnknown SortField = iota
	// SortByOrderNumber orders by the human order number.
	SortByOrderNumber
	// SortByCustomerName orders by customer name.
	SortByCustomerName
	// SortByRegion orders by region name.
	SortByRegion
	// SortByStatus orders by lifecycle rank, Created first.
	SortByStatus
	// SortByPriority orders by urgency rank, Low first.
	SortByPriority
	// SortByAmount orders by monetary amount.
	SortByAmount
	// SortByCreatedAt orders by creation time.
	SortByCreatedAt
)

// Direction is the sort direction of a projection.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// Sort is the current ordering of a projection: one field, one direction.
type Sort struct {
	Field     SortField
	Direction Direction
}

// compare orders two rows by the sort field, ascending. Enumerated fields
// compare by their fixed rank, never alphabetically; string fields compare
// case insensitively so the board reads naturally.
func (s Sort) compare(a, b Summary) int {
	switch s.Field {
	case SortByOrderNumber:
		return compareFold(a.OrderNumber, b.OrderNumber)
	case SortByCustomerName:
		return compareFold(a.CustomerName, b.CustomerName)
	case SortByRegion:
		return compareFold(a.Region, b.Region)
	case SortByStatus:
		return a.Status.Rank() - b.Status.Rank()
	case SortByPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case SortByAmount:
		switch {
		case a.Amount.Amount() < b.Amount.Amount():
			return -1
		case a.Amount.Amount() > b.Amount.Amount():
			return 1
		default:
			return 0
		}
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortFieldUnknown:
		return 0
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
