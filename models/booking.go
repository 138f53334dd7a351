package models

import "time"

// DefaultNote is stored when the user does not add a note to a booking.
const DefaultNote = "No note"

// SessionParams is the state accumulated across conversation turns. It is
// never stored server-side: every turn it is read out of the echoed
// session-parameters context and written back into the response.
// DateTime holds the user's local ISO-8601 timestamp and UTCTime its UTC
// equivalent; when both are set they denote the same instant.
type SessionParams struct {
	Person            string `json:"person"`
	Email             string `json:"email"`
	DateTime          string `json:"date_time"`
	UTCTime           string `json:"utc_time"`
	Timezone          string `json:"timezone"`
	Note              string `json:"note"`
	ConfirmedDateTime string `json:"confirmed_date_time,omitempty"`
}

// NewSessionParams returns the blank state created when a scheduling
// conversation starts.
func NewSessionParams() *SessionParams {
	return &SessionParams{Note: DefaultNote}
}

// NoteOrDefault returns the stored note, or DefaultNote if none was recorded.
func (p *SessionParams) NoteOrDefault() string {
	if p == nil || p.Note == "" {
		return DefaultNote
	}
	return p.Note
}

// TimezoneOr returns the recorded timezone, falling back to def when the
// session has none.
func (p *SessionParams) TimezoneOr(def string) string {
	if p == nil || p.Timezone == "" {
		return def
	}
	return p.Timezone
}

// Slot is the outcome of a successful availability negotiation. IsOriginal
// reports whether the user's requested time itself was free, as opposed to a
// later alternate being substituted.
type Slot struct {
	LocalTime  time.Time
	UTCTime    time.Time
	IsOriginal bool
}

// BookingRecord is the terminal artifact handed to the calendar gateway and,
// flattened, to the booking ledger.
type BookingRecord struct {
	Name     string
	Email    string
	Note     string
	StartUTC time.Time
	Duration time.Duration
}

// Summary is the calendar event title.
func (r BookingRecord) Summary() string {
	return "New appointment for " + r.Name
}

// Description is the calendar event body.
func (r BookingRecord) Description() string {
	return r.Email + ", " + r.Note
}

// LedgerRow flattens the record into the audit-log row appended to the sheet.
func (r BookingRecord) LedgerRow() []string {
	return []string{r.Name, r.Email, r.StartUTC.Format(time.RFC3339)}
}
