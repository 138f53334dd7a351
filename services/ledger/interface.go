package ledger

import "context"

// Gateway is the append-only audit log for completed bookings. Failures are
// logged and swallowed by the caller: a booking is confirmed even when its
// ledger row cannot be written.
type Gateway interface {
	AppendRow(ctx context.Context, row []string) error
}
