package order

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NumberSequence hands out human readable order numbers in the form
// ORD-YYYYMMDD-NNNNNN, where the date is the creation date and the counter
// increases monotonically across the process. Safe for concurrent use.
type NumberSequence struct {
	counter atomic.Uint64
}

// NewNumberSequence creates a sequence that continues after start. Pass the
// highest sequence number already issued, or zero for a fresh process.
func NewNumberSequence(start uint64) *NumberSequence {
	sequence := &NumberSequence{}
	sequence.counter.Store(start)

	return sequence
}

// Next issues the next order number for the given creation time.
func (s *NumberSequence) Next(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), s.counter.Add(1))
}
