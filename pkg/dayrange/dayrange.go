// Package dayrange defines the day-boundary policy used to classify
// arrivals and departures: the half-open interval [local midnight,
// local midnight + 24h). The window is always exactly 24 hours wide, so
// days containing a DST transition are classified like any other day.
package dayrange

import (
	"time"

	"github.com/jinzhu/now"
)

// Today returns the day window containing t, in t's location.
func Today(t time.Time) (from, to time.Time) {
	from = now.New(t).BeginningOfDay()
	to = from.Add(24 * time.Hour)
	return from, to
}

// Contains reports whether ts falls inside the half-open window [from, to).
func Contains(from, to, ts time.Time) bool {
	return !ts.Before(from) && ts.Before(to)
}
