// Package biztime holds the desk's business timezone. Timestamps are stored
// and exchanged in UTC; the business timezone only decides which calendar
// year or month an instant belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	location *time.Location
	once     sync.Once
	initErr  error
)

// Init loads tz once per process. Later calls return the first result.
func Init(tz string) error {
	once.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		location, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit is Init for startup code.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone, UTC when Init was never called.
func Location() *time.Location {
	if err := Init(""); err != nil || location == nil {
		return time.UTC
	}
	return location
}

// NowUTC truncates to the millisecond precision of the store.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// YearOf returns the business calendar year of t. Yearly correspondence
// numbers and year filters use it.
func YearOf(t time.Time) int {
	return t.In(Location()).Year()
}

// YearRangeUTC returns the half-open UTC range [start, end) of a business
// calendar year.
func YearRangeUTC(year int) (time.Time, time.Time) {
	loc := Location()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(1, 0, 0).UTC()
}
