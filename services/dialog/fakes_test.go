package dialog

import (
	"context"
	"testing"
	"time"

	"salonbot/models"
	"salonbot/services/calendar"
)

// fakeCalendar scripts busy-query answers and records event creations.
type fakeCalendar struct {
	busy      []bool
	allBusy   bool
	busyErr   error
	queries   int
	createErr error
	created   []string
	lastStart time.Time
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, summary, description string, startUTC time.Time, duration time.Duration) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, summary)
	f.lastStart = startUTC
	return "event-id", nil
}

func (f *fakeCalendar) QueryBusy(ctx context.Context, startUTC, endUTC time.Time) ([]calendar.BusyInterval, error) {
	i := f.queries
	f.queries++
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	if f.allBusy || (i < len(f.busy) && f.busy[i]) {
		return []calendar.BusyInterval{{Start: startUTC, End: endUTC}}, nil
	}
	return nil, nil
}

type fakeLedger struct {
	rows [][]string
	err  error
}

func (f *fakeLedger) AppendRow(ctx context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakeResponder struct {
	reply     string
	err       error
	lastQuery string
}

func (f *fakeResponder) Respond(ctx context.Context, query string) (string, error) {
	f.lastQuery = query
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// testNow is the frozen clock for handler tests: early morning UTC on a
// Monday, so same-day afternoon requests are always in the future.
var testNow = time.Date(2025, 1, 27, 8, 0, 0, 0, time.UTC)

func newTestService(cal *fakeCalendar, led *fakeLedger, resp *fakeResponder) *DefaultDialogService {
	if cal == nil {
		cal = &fakeCalendar{}
	}
	if led == nil {
		led = &fakeLedger{}
	}
	if resp == nil {
		resp = &fakeResponder{reply: "generated answer"}
	}
	s := NewDialogService(Options{
		WorkingHoursStart: 9,
		WorkingHoursEnd:   17,
		DefaultTimezone:   "Europe/Belgrade",
		StaticBaseURL:     "http://localhost:8080",
	}, cal, led, resp)
	s.Now = func() time.Time { return testNow }
	return s
}

func newReq(action string, params map[string]any, contexts ...models.Context) *models.WebhookRequest {
	return &models.WebhookRequest{
		Session: testSession,
		QueryResult: &models.QueryResult{
			Action:         action,
			Parameters:     params,
			OutputContexts: contexts,
		},
	}
}

func sessionCtx(params *models.SessionParams) models.Context {
	return models.Context{
		Name:          testSession + "/contexts/session-parameters",
		LifespanCount: 99,
		Parameters:    params,
	}
}

// textMessages flattens all plain text blocks of a response.
func textMessages(resp *models.WebhookResponse) []string {
	var out []string
	for _, m := range resp.FulfillmentMessages {
		if m.Text != nil {
			out = append(out, m.Text.Text...)
		}
	}
	return out
}

func firstText(t *testing.T, resp *models.WebhookResponse) string {
	t.Helper()
	msgs := textMessages(resp)
	if len(msgs) == 0 {
		t.Fatal("response has no text messages")
	}
	return msgs[0]
}

// chipTexts returns the chip labels of the first chips block, if any.
func chipTexts(resp *models.WebhookResponse) []string {
	for _, m := range resp.FulfillmentMessages {
		if m.Payload == nil {
			continue
		}
		for _, col := range m.Payload.RichContent {
			for _, block := range col {
				if block.Type == "chips" {
					var out []string
					for _, o := range block.Options {
						out = append(out, o.Text)
					}
					return out
				}
			}
		}
	}
	return nil
}

// awaitContext asserts the response carries the named lifespan-1 state
// context and returns it.
func awaitContext(t *testing.T, resp *models.WebhookResponse, name string) models.Context {
	t.Helper()
	want := testSession + "/contexts/" + name
	for _, c := range resp.OutputContexts {
		if c.Name == want {
			if c.LifespanCount != 1 {
				t.Errorf("context %s lifespan = %d, want 1", name, c.LifespanCount)
			}
			return c
		}
	}
	t.Fatalf("response has no context %q (got %v)", name, contextNames(resp))
	return models.Context{}
}

// carriedParams returns the session-parameters payload of the response.
func carriedParams(t *testing.T, resp *models.WebhookResponse) *models.SessionParams {
	t.Helper()
	for _, c := range resp.OutputContexts {
		if c.Name == testSession+"/contexts/"+ctxSessionParameters {
			if c.LifespanCount != 99 {
				t.Errorf("session-parameters lifespan = %d, want 99", c.LifespanCount)
			}
			if c.Parameters == nil {
				t.Fatal("session-parameters context has no parameters")
			}
			return c.Parameters
		}
	}
	t.Fatalf("response carries no session-parameters context (got %v)", contextNames(resp))
	return nil
}

func contextNames(resp *models.WebhookResponse) []string {
	var out []string
	for _, c := range resp.OutputContexts {
		out = append(out, c.Name)
	}
	return out
}
