// Package services contains the application services of the console client:
// one per entity family, each turning typed operations and filter selections
// into concrete API paths. Relative filters (today, last7days, thismonth)
// expand into absolute date parameters computed from an injected clock.
package services

import (
	"errors"
	"fmt"
	"time"
)

// Clock supplies "now" so filter expansion is testable against a fixed date.
type Clock func() time.Time

// ErrDateRangeRequired is returned when the explicit date-range filter is
// requested without both bounds. The view layer treats this as the signal
// for its two-phase interaction: fill the bounds, wait for an apply.
var ErrDateRangeRequired = errors.New("date range requires both from and to dates")

func monthlyQuery(year, month int) string {
	return fmt.Sprintf("?year=%d&month=%d", year, month)
}
