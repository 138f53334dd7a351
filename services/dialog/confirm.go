package dialog

import (
	"context"
	"fmt"

	"salonbot/models"
	"salonbot/services/calendar"
	"salonbot/utils"

	"go.uber.org/zap"
)

// handleConfirmsNoChanges is the terminal turn: the collected details become
// a calendar event and a row in the booking ledger, and the conversation
// ends with no output contexts.
func (s *DefaultDialogService) handleConfirmsNoChanges(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	_, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Final confirmation with invalid session", zap.Error(err))
		return sessionError()
	}

	// utc_time normally arrives pre-computed from the date-time turn.
	// Recover it from the local time when an older session skipped that step.
	if params.UTCTime == "" {
		if params.DateTime == "" {
			logger.Warn("Final confirmation without date_time or utc_time")
			return sessionError()
		}
		if err := storeUTC(params, params.DateTime, params.TimezoneOr(s.Opts.DefaultTimezone)); err != nil {
			logger.Error("Could not recover UTC time from local time", zap.Error(err))
			return FormatResponse(
				[]string{"There was an issue processing the date and time. Please try again."},
				nil,
			)
		}
	}

	startUTC, err := parseISO(params.UTCTime)
	if err != nil {
		logger.Error("Stored UTC time is unparseable", zap.String("utcTime", params.UTCTime), zap.Error(err))
		return FormatResponse(
			[]string{"There was an issue processing the date and time. Please try again."},
			nil,
		)
	}

	record := models.BookingRecord{
		Name:     orUnknown(params.Person),
		Email:    orUnknown(params.Email),
		Note:     params.NoteOrDefault(),
		StartUTC: startUTC,
		Duration: calendar.SlotLength,
	}

	eventID, err := s.Calendar.CreateEvent(ctx, record.Summary(), record.Description(), record.StartUTC, record.Duration)
	if err != nil {
		logger.Error("Calendar event creation failed", zap.Error(err))
		return FormatResponse(
			[]string{"Your details were confirmed but the appointment could not be added to the calendar. Please try again later."},
			nil,
		)
	}
	logger.Info("Calendar event created", zap.String("eventID", eventID))

	// The ledger is bookkeeping, not part of the booking contract. A failed
	// append is logged and the confirmation still goes out.
	if s.Ledger != nil {
		if err := s.Ledger.AppendRow(ctx, record.LedgerRow()); err != nil {
			logger.Error("Ledger append failed", zap.Error(err))
		}
	}

	return FormatResponse(
		[]string{fmt.Sprintf(
			"Awesome! Your appointment is all set:\n"+
				"- Name: %s\n"+
				"- Email: %s\n"+
				"Date/Time: %s\n"+
				"- Note: %s\n"+
				"Feel free to reach out if you need anything else. Goodbye for now!",
			record.Name, record.Email, formatDisplayTime(params.DateTime), record.Note)},
		nil,
	)
}

func (s *DefaultDialogService) handleWantsToUpdate(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, err := ExtractSession(req)
	if err != nil {
		logger.Warn("Update request with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	contexts := ExtractOutputContexts(req)
	if len(contexts) == 0 {
		logger.Warn("Update request without output contexts")
		return FormatResponse(
			[]string{"I couldn't find enough information to proceed. Can you try again?"},
			nil,
		)
	}
	params := ExtractSessionParameters(contexts)

	dateTime := params.DateTime
	if dateTime == "" {
		dateTime = "unknown"
	} else if t, err := parseISO(dateTime); err == nil {
		dateTime = t.Format("2006-01-02 15:04") + " h"
	}

	prompt := fmt.Sprintf(
		"Here’s the information I have so far:\n\n"+
			"📋 Name: %s\n"+
			"📧 Email: %s\n"+
			"📅 Date/Time: %s\n"+
			"📝 Note: %s\n\n"+
			"What would you like to update? You can choose from the following options:",
		orUnknown(params.Person), orUnknown(params.Email), dateTime, params.NoteOrDefault())

	return FormatResponseWithChips(
		[]string{prompt},
		[]string{"Name", "Email", "Date-Time", "Note"},
		BuildContexts(session, ctxAwaitField, params),
	)
}
