package calendar

import (
	"context"
	"time"

	"salonbot/models"

	"go.uber.org/zap"

	"salonbot/utils"
)

const (
	// SlotLength is the fixed appointment duration.
	SlotLength = 30 * time.Minute
	// DefaultMaxAttempts bounds the probe loop: 12 half-hour candidates
	// cover the six hours after the requested time.
	DefaultMaxAttempts = 12
)

// Negotiator probes the calendar's busy feed at fixed 30-minute increments
// until a free slot is found or the attempt budget runs out. Probes are
// sequential: the earliest free candidate always wins.
type Negotiator struct {
	Gateway     Gateway
	MaxAttempts int
}

// NewNegotiator returns a negotiator with the default attempt budget.
func NewNegotiator(gw Gateway) *Negotiator {
	return &Negotiator{Gateway: gw, MaxAttempts: DefaultMaxAttempts}
}

// FindSlot tests desired itself, then desired+30min, desired+60min and so on.
// The first candidate whose window has no busy overlap is returned, with
// IsOriginal set when it is the requested time itself. found=false with a nil
// error means every candidate was busy. A busy-query failure aborts the
// negotiation and is returned as an error: an unverifiable slot is never
// treated as free.
//
// There is no re-verification between a successful probe and the later event
// creation; two concurrent negotiations can observe the same slot free. That
// window is accepted for this traffic volume.
func (n *Negotiator) FindSlot(ctx context.Context, desired time.Time) (models.Slot, bool, error) {
	logger := utils.GetLogger()
	attempts := n.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		start := desired.Add(time.Duration(i) * SlotLength)
		busy, err := n.Gateway.QueryBusy(ctx, start.UTC(), start.Add(SlotLength).UTC())
		if err != nil {
			logger.Warn("Slot negotiation aborted: busy query failed",
				zap.Int("attempt", i), zap.Error(err))
			return models.Slot{}, false, err
		}
		if len(busy) == 0 {
			return models.Slot{
				LocalTime:  start,
				UTCTime:    start.UTC(),
				IsOriginal: i == 0,
			}, true, nil
		}
	}

	logger.Info("No free slot found", zap.Int("attempts", attempts),
		zap.String("desired", desired.Format(time.RFC3339)))
	return models.Slot{}, false, nil
}
