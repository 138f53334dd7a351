package dialog

import (
	"fmt"
	"time"

	"salonbot/models"
)

// isoOffset renders timestamps with an explicit numeric offset. UTC values
// serialize as "+00:00" rather than "Z", which is what the agent expects to
// get back in session parameters.
const isoOffset = "2006-01-02T15:04:05-07:00"

// displayLayout is how timestamps read back to the user, e.g.
// "2025-01-27 at 02:00 PM".
const displayLayout = "2006-01-02 at 03:04 PM"

// parseISO accepts offset-aware ISO-8601 timestamps, including the "Z"
// suffix form.
func parseISO(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	return t, nil
}

// ConvertToUTC parses an offset-aware local timestamp and returns its UTC
// rendering alongside the original value.
func ConvertToUTC(dateTime string) (local, utc string, err error) {
	t, err := parseISO(dateTime)
	if err != nil {
		return "", "", err
	}
	return dateTime, t.UTC().Format(isoOffset), nil
}

// storeUTC records the negotiated local time, its UTC counterpart and the
// timezone it was interpreted in.
func storeUTC(params *models.SessionParams, dateTime, timezone string) error {
	local, utc, err := ConvertToUTC(dateTime)
	if err != nil {
		return err
	}
	params.DateTime = local
	params.UTCTime = utc
	params.Timezone = timezone
	return nil
}

// formatDisplayTime renders a stored timestamp for user-facing messages.
// Anything unparseable comes back as "unknown" rather than leaking the raw
// value into the conversation.
func formatDisplayTime(value string) string {
	if value == "" {
		return "unknown"
	}
	t, err := parseISO(value)
	if err != nil {
		return "unknown"
	}
	return t.Format(displayLayout)
}
