package calendar

import (
	"context"
	"time"
)

// BusyInterval is one occupied range returned by the free/busy feed.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Gateway abstracts the external calendar service: event creation and
// busy-interval queries. The dialog layer only ever talks to this interface
// so tests can substitute fakes.
type Gateway interface {
	// CreateEvent inserts an event starting at startUTC and returns a
	// reference to it.
	CreateEvent(ctx context.Context, summary, description string, startUTC time.Time, duration time.Duration) (string, error)
	// QueryBusy returns the busy intervals overlapping [startUTC, endUTC).
	QueryBusy(ctx context.Context, startUTC, endUTC time.Time) ([]BusyInterval, error)
}
