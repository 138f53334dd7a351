package calendar

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubGateway scripts QueryBusy responses: one entry per probe, true meaning
// the probed window is busy.
type stubGateway struct {
	busy  []bool
	err   error
	errAt int
	calls int
}

func (s *stubGateway) CreateEvent(ctx context.Context, summary, description string, startUTC time.Time, duration time.Duration) (string, error) {
	return "event-id", nil
}

func (s *stubGateway) QueryBusy(ctx context.Context, startUTC, endUTC time.Time) ([]BusyInterval, error) {
	i := s.calls
	s.calls++
	if s.err != nil && i == s.errAt {
		return nil, s.err
	}
	if i < len(s.busy) && s.busy[i] {
		return []BusyInterval{{Start: startUTC, End: endUTC}}, nil
	}
	return nil, nil
}

func TestFindSlotOriginalFree(t *testing.T) {
	gw := &stubGateway{busy: []bool{false}}
	n := NewNegotiator(gw)

	desired := time.Date(2025, 1, 27, 14, 0, 0, 0, time.FixedZone("CET", 3600))
	slot, found, err := n.FindSlot(context.Background(), desired)
	if err != nil {
		t.Fatalf("FindSlot returned error: %v", err)
	}
	if !found {
		t.Fatal("expected a slot to be found")
	}
	if !slot.IsOriginal {
		t.Error("expected the original slot to be reported as available")
	}
	if !slot.LocalTime.Equal(desired) {
		t.Errorf("LocalTime = %v, want %v", slot.LocalTime, desired)
	}
	if !slot.UTCTime.Equal(desired.UTC()) {
		t.Errorf("UTCTime = %v, want %v", slot.UTCTime, desired.UTC())
	}
	if gw.calls != 1 {
		t.Errorf("expected 1 busy query, got %d", gw.calls)
	}
}

func TestFindSlotSuggestsLater(t *testing.T) {
	gw := &stubGateway{busy: []bool{true, true, false}}
	n := NewNegotiator(gw)

	desired := time.Date(2025, 1, 27, 14, 0, 0, 0, time.UTC)
	slot, found, err := n.FindSlot(context.Background(), desired)
	if err != nil {
		t.Fatalf("FindSlot returned error: %v", err)
	}
	if !found {
		t.Fatal("expected a slot to be found")
	}
	if slot.IsOriginal {
		t.Error("a substituted slot must not be marked original")
	}
	want := desired.Add(2 * SlotLength)
	if !slot.LocalTime.Equal(want) {
		t.Errorf("LocalTime = %v, want %v", slot.LocalTime, want)
	}
}

func TestFindSlotExhausted(t *testing.T) {
	gw := &stubGateway{busy: []bool{true, true}}
	n := &Negotiator{Gateway: gw, MaxAttempts: 2}

	_, found, err := n.FindSlot(context.Background(), time.Date(2025, 1, 27, 14, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FindSlot returned error: %v", err)
	}
	if found {
		t.Error("expected no slot within the attempt budget")
	}
	if gw.calls != 2 {
		t.Errorf("expected 2 busy queries, got %d", gw.calls)
	}
}

func TestFindSlotAbortsOnQueryError(t *testing.T) {
	boom := errors.New("freebusy unavailable")
	gw := &stubGateway{busy: []bool{true, true}, err: boom, errAt: 1}
	n := NewNegotiator(gw)

	_, found, err := n.FindSlot(context.Background(), time.Date(2025, 1, 27, 14, 0, 0, 0, time.UTC))
	if !errors.Is(err, boom) {
		t.Fatalf("expected the query error to propagate, got %v", err)
	}
	if found {
		t.Error("an aborted negotiation must not report a slot")
	}
	if gw.calls != 2 {
		t.Errorf("probing should stop at the failed query, got %d calls", gw.calls)
	}
}
