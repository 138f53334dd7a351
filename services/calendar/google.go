package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"salonbot/utils"

	"go.uber.org/zap"
)

// gatewayTimeout bounds every outbound calendar call.
const gatewayTimeout = 10 * time.Second

// GoogleGateway implements Gateway against the Google Calendar API using a
// service-account credential. One instance is constructed at process start
// and shared across all conversations.
type GoogleGateway struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleGateway builds the calendar client from a service-account JSON
// credential.
func NewGoogleGateway(ctx context.Context, credentialsJSON, calendarID string) (*GoogleGateway, error) {
	if credentialsJSON == "" {
		return nil, fmt.Errorf("calendar: missing service-account credentials")
	}
	if calendarID == "" {
		return nil, fmt.Errorf("calendar: missing calendar id")
	}
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to build service: %w", err)
	}
	return &GoogleGateway{svc: svc, calendarID: calendarID}, nil
}

func (g *GoogleGateway) CreateEvent(ctx context.Context, summary, description string, startUTC time.Time, duration time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	start := startUTC.UTC()
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: start.Add(duration).Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("calendar: event insert failed: %w", err)
	}
	utils.GetLogger().Info("Calendar event created",
		zap.String("eventId", created.Id),
		zap.String("start", start.Format(time.RFC3339)))
	return created.Id, nil
}

func (g *GoogleGateway) QueryBusy(ctx context.Context, startUTC, endUTC time.Time) ([]BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	req := &gcal.FreeBusyRequest{
		TimeMin:  startUTC.UTC().Format(time.RFC3339),
		TimeMax:  endUTC.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
		Items:    []*gcal.FreeBusyRequestItem{{Id: g.calendarID}},
	}
	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[g.calendarID]
	if !ok {
		return nil, nil
	}
	intervals := make([]BusyInterval, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, fmt.Errorf("calendar: bad busy interval start %q: %w", b.Start, err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, fmt.Errorf("calendar: bad busy interval end %q: %w", b.End, err)
		}
		intervals = append(intervals, BusyInterval{Start: start, End: end})
	}
	return intervals, nil
}
