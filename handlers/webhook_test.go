package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salonbot/models"
	"salonbot/services/calendar"
	"salonbot/services/dialog"

	"github.com/gin-gonic/gin"
)

type freeCalendar struct{}

func (freeCalendar) CreateEvent(ctx context.Context, summary, description string, startUTC time.Time, duration time.Duration) (string, error) {
	return "event-id", nil
}

func (freeCalendar) QueryBusy(ctx context.Context, startUTC, endUTC time.Time) ([]calendar.BusyInterval, error) {
	return nil, nil
}

type noopLedger struct{}

func (noopLedger) AppendRow(ctx context.Context, row []string) error { return nil }

type cannedResponder struct{}

func (cannedResponder) Respond(ctx context.Context, query string) (string, error) {
	return "canned answer", nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := dialog.NewDialogService(dialog.Options{
		WorkingHoursStart: 9,
		WorkingHoursEnd:   17,
		DefaultTimezone:   "Europe/Belgrade",
		StaticBaseURL:     "http://localhost:8080",
	}, freeCalendar{}, noopLedger{}, cannedResponder{})

	r := gin.New()
	r.POST("/webhook", NewWebhookHandler(svc).Handle)
	r.GET("/health", Health)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookMissingBody(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing request body") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestWebhookMissingQueryResult(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{"session":"projects/p/agent/sessions/s1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing 'queryResult' in request body") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestWebhookMissingAction(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{"session":"projects/p/agent/sessions/s1","queryResult":{"queryText":"hi"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing 'action' in 'queryResult'") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestWebhookUnknownActionIsStillOK(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{"session":"projects/p/agent/sessions/s1","queryResult":{"action":"noSuchAction"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.WebhookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.FulfillmentMessages) != 1 || resp.FulfillmentMessages[0].Text == nil {
		t.Fatalf("unexpected response shape: %+v", resp)
	}
	if got := resp.FulfillmentMessages[0].Text.Text[0]; got != "Sorry, I didn’t understand." {
		t.Errorf("message = %q", got)
	}
}

func TestWebhookFullTurn(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{
		"session":"projects/p/agent/sessions/s1",
		"queryResult":{
			"action":"userProvidesNameIntent",
			"parameters":{"person.original":"John Doe"},
			"outputContexts":[{
				"name":"projects/p/agent/sessions/s1/contexts/session-parameters",
				"lifespanCount":99,
				"parameters":{"person":"","email":"","note":"No note"}
			}]
		}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.WebhookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got := resp.FulfillmentMessages[0].Text.Text[0]; got != "Thanks for your name, John Doe! What’s your email?" {
		t.Errorf("message = %q", got)
	}
	if len(resp.OutputContexts) != 2 {
		t.Fatalf("contexts = %+v", resp.OutputContexts)
	}
	if !strings.HasSuffix(resp.OutputContexts[0].Name, "/contexts/await-email") {
		t.Errorf("state context = %q", resp.OutputContexts[0].Name)
	}
	if resp.OutputContexts[1].Parameters == nil || resp.OutputContexts[1].Parameters.Person != "John Doe" {
		t.Errorf("session parameters = %+v", resp.OutputContexts[1].Parameters)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %s", w.Body.String())
	}
}
