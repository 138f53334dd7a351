package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salonbot/models"
	"salonbot/utils"

	"go.uber.org/zap"
)

func (s *DefaultDialogService) handleWelcome(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	if _, err := ExtractSession(req); err != nil {
		utils.GetLogger().Warn("Welcome turn with invalid session", zap.Error(err))
		return sessionError()
	}

	return FormatResponseWithChips(
		[]string{
			"Hi there! I’m here to assist you. Here’s what I can do for you:",
			"- Provide our business hours and location.",
			"- Tell you about our services.",
			"- Help you schedule an appointment!",
			"- Type Products if you want product info.",
			"What would you like to do?",
		},
		[]string{"Schedule Appointment", "Services", "Products"},
		nil,
	)
}

func (s *DefaultDialogService) handleWantsToSchedule(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, err := ExtractSession(req)
	if err != nil {
		utils.GetLogger().Warn("Schedule start with invalid session", zap.Error(err))
		return FormatResponse([]string{"Something went wrong. Invalid session."}, nil)
	}

	// A fresh booking starts from a blank parameter set.
	params := models.NewSessionParams()

	return FormatResponseWithChips(
		[]string{"Great! To schedule, let’s start with your name. What’s your name?"},
		[]string{"Restart Chat"},
		BuildContexts(session, ctxAwaitName, params),
	)
}

func (s *DefaultDialogService) handleProvidesName(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Name turn with invalid session", zap.Error(err))
		return sessionError()
	}

	name := strings.TrimSpace(stringParam(req, "person.original"))
	logger.Info("Extracted user name", zap.String("name", name))

	if !ValidateName(name) {
		logger.Warn("Invalid name provided", zap.String("name", name))
		return FormatResponse(
			[]string{"Hmm, that doesn’t look like a valid name. Please avoid special characters or numbers."},
			BuildContexts(session, ctxAwaitName, params),
		)
	}

	params.Person = name

	return FormatResponse(
		[]string{fmt.Sprintf("Thanks for your name, %s! What’s your email?", name)},
		BuildContexts(session, ctxAwaitEmail, params),
	)
}

func (s *DefaultDialogService) handleProvidesEmail(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Email turn with invalid session", zap.Error(err))
		return sessionError()
	}

	email := strings.TrimSpace(stringParam(req, "email.original"))
	if !IsValidEmail(email) {
		logger.Warn("Invalid email provided", zap.String("email", email))
		return FormatResponse(
			[]string{"Hmm, that doesn’t look like a valid email address. Could you try again?"},
			BuildContexts(session, ctxAwaitEmailUpdate, params),
		)
	}

	params.Email = email

	return FormatResponse(
		[]string{"Thanks! What date and time works for you? Example: Tomorrow at 1 pm or January 10th at 22h."},
		BuildContexts(session, ctxAwaitDateTime, params),
	)
}

func (s *DefaultDialogService) handleProvidesDateTime(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Date-time turn with invalid session", zap.Error(err))
		return sessionError()
	}
	return s.negotiateDateTime(ctx, session, params, req, ctxAwaitDateTime, false)
}

// negotiateDateTime runs the shared date-time pipeline for both the initial
// booking flow and the update flow: parse, reject past times, enforce working
// hours, convert to UTC and probe the calendar for a free slot. rePrompt is
// the context to fall back to when any step fails; summary switches the
// success messages between the two flows.
func (s *DefaultDialogService) negotiateDateTime(ctx context.Context, session string, params *models.SessionParams, req *models.WebhookRequest, rePrompt string, summary bool) *models.WebhookResponse {
	logger := utils.GetLogger()

	dateTimeValue := dateTimeParam(req)
	if dateTimeValue == "" {
		logger.Warn("Missing date-time input", zap.String("action", req.QueryResult.Action))
		return FormatResponse(
			[]string{"I didn’t catch that. Can you provide a date and time like 'Tomorrow at 1 pm'?"},
			BuildContexts(session, rePrompt, params),
		)
	}

	parsed, err := parseISO(dateTimeValue)
	if err != nil {
		logger.Warn("Unparseable date-time input", zap.String("value", dateTimeValue), zap.Error(err))
		return FormatResponse(
			[]string{"The date-time format is invalid. Please provide it in a valid format like 'Tomorrow at 1 pm'."},
			BuildContexts(session, rePrompt, params),
		)
	}

	timezone := params.TimezoneOr(s.Opts.DefaultTimezone)
	if _, locErr := time.LoadLocation(timezone); locErr != nil {
		logger.Warn("Unknown session timezone, falling back to default",
			zap.String("timezone", timezone))
		timezone = s.Opts.DefaultTimezone
	}

	if parsed.Before(s.Now()) {
		logger.Warn("Requested date-time is in the past", zap.Time("requested", parsed))
		return FormatResponse(
			[]string{"You can’t schedule for a past date or time. Please choose a future date and time."},
			BuildContexts(session, rePrompt, params),
		)
	}

	if !IsWithinWorkingHours(dateTimeValue, timezone, s.Opts.WorkingHoursStart, s.Opts.WorkingHoursEnd) {
		logger.Warn("Requested time outside working hours", zap.String("value", dateTimeValue))
		return FormatResponse(
			[]string{fmt.Sprintf("Sorry, that time is outside our working hours (%d:00 to %d:00). Please provide another time.",
				s.Opts.WorkingHoursStart, s.Opts.WorkingHoursEnd)},
			BuildContexts(session, rePrompt, params),
		)
	}

	if err := storeUTC(params, dateTimeValue, timezone); err != nil {
		logger.Error("Failed to convert date-time to UTC", zap.Error(err))
		return FormatResponse(
			[]string{"An error occurred while processing your date and time. Please try again."},
			BuildContexts(session, rePrompt, params),
		)
	}

	slot, found, err := s.Negotiator.FindSlot(ctx, parsed)
	if err != nil {
		logger.Error("Slot availability check failed", zap.Error(err))
		return FormatResponse(
			[]string{"An error occurred while checking availability. Please try again later."},
			BuildContexts(session, rePrompt, params),
		)
	}

	if !found {
		logger.Warn("No slots available", zap.Time("requested", parsed))
		return FormatResponse(
			[]string{"I'm sorry, no slots are available within the next 6 hours. Please provide another time."},
			BuildContexts(session, rePrompt, params),
		)
	}

	params.DateTime = slot.LocalTime.Format(isoOffset)
	params.UTCTime = slot.UTCTime.Format(isoOffset)

	if slot.IsOriginal {
		if summary {
			formatted := formatDisplayTime(dateTimeValue)
			return FormatResponseWithChips(
				[]string{fmt.Sprintf(
					"Great! The time you selected %s is available. Here’s what I have now:\n\n"+
						"- Name: %s\n"+
						"- Email: %s\n"+
						"Date/Time: %s\n"+
						"- Note: %s\n"+
						"Is there anything else you would like to change?",
					formatted, orUnknown(params.Person), orUnknown(params.Email), formatted, params.NoteOrDefault())},
				[]string{"Yes", "No"},
				BuildContexts(session, ctxAwaitConfirmation, params),
			)
		}
		return FormatResponseWithChips(
			[]string{"Great! The time you selected is available. Do you want to add a note?"},
			[]string{"Yes", "No"},
			BuildContexts(session, ctxAwaitNoteAction, params),
		)
	}

	requested := formatDisplayTime(dateTimeValue)
	suggested := slot.LocalTime.Format(displayLayout)

	if summary {
		return FormatResponseWithChips(
			[]string{
				fmt.Sprintf("Unfortunately, the time you requested (**%s**) is unavailable.", requested),
				"However, the following slot is available:",
				fmt.Sprintf("**Date/Time**: %s", suggested),
				"Would you like to schedule this time?",
			},
			[]string{"Yes", "No"},
			BuildContexts(session, ctxAwaitSlotConfirmationUpdate, params),
		)
	}
	return FormatResponseWithChips(
		[]string{
			fmt.Sprintf("The time you requested (%s) is unavailable.", requested),
			"However, the following slot is available:",
			fmt.Sprintf("Date/Time: %s", suggested),
			"Would you like to book this slot instead?",
		},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitSlotConfirmation, params),
	)
}

func (s *DefaultDialogService) handleConfirmsSlot(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Slot confirmation with invalid session", zap.Error(err))
		return sessionError()
	}

	if params.DateTime == "" {
		logger.Warn("Slot confirmed without a stored date-time")
		return FormatResponse(
			[]string{"It seems the date and time are missing. Please provide the details again."},
			BuildContexts(session, ctxAwaitDateTime, params),
		)
	}

	params.ConfirmedDateTime = params.DateTime

	return FormatResponseWithChips(
		[]string{"Great. Do you want to add a note?"},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitNoteAction, params),
	)
}

func (s *DefaultDialogService) handleDeniesSlot(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Slot denial with invalid session", zap.Error(err))
		return sessionError()
	}

	return FormatResponse(
		[]string{"Okay, no problem! What date and time works best for you? You can say something like 'Tomorrow at 2 pm' or 'January 20th at 10h'."},
		BuildContexts(session, ctxAwaitDateTime, params),
	)
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
