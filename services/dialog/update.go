package dialog

import (
	"context"
	"fmt"
	"strings"

	"salonbot/models"
	"salonbot/utils"

	"go.uber.org/zap"
)

// chooseField is the shared shape of the four "which field" turns: show the
// current value, then hand off to the matching await-*-update context.
func (s *DefaultDialogService) chooseField(req *models.WebhookRequest, next string, message func(params *models.SessionParams) string) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, err := ExtractSession(req)
	if err != nil {
		logger.Warn("Field choice with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	contexts := ExtractOutputContexts(req)
	if len(contexts) == 0 {
		logger.Warn("Field choice without output contexts", zap.String("next", next))
		return FormatResponse(
			[]string{"I couldn't retrieve the current information. Please try again."},
			nil,
		)
	}
	params := ExtractSessionParameters(contexts)

	return FormatResponse([]string{message(params)}, BuildContexts(session, next, params))
}

func (s *DefaultDialogService) handleChoosesName(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.chooseField(req, ctxAwaitNameUpdate, func(params *models.SessionParams) string {
		if params.Person == "" {
			return "It seems your current name is not on record. What name should I update it to?"
		}
		return fmt.Sprintf("Your current name is %s. What would you like to update it to?", params.Person)
	})
}

func (s *DefaultDialogService) handleChoosesEmail(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.chooseField(req, ctxAwaitEmailUpdate, func(params *models.SessionParams) string {
		if params.Email == "" {
			return "It seems your current email is not on record. What email should I update it to?"
		}
		return fmt.Sprintf("Your current email is %s. What would you like to update it to?", params.Email)
	})
}

func (s *DefaultDialogService) handleChoosesDateTime(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.chooseField(req, ctxAwaitDateTimeUpdate, func(params *models.SessionParams) string {
		if params.DateTime == "" {
			return "It seems your current date and time are not on record. What would you like to update it to?"
		}
		return fmt.Sprintf("Your current date-time is %s. What would you like to update it to?", formatDisplayTime(params.DateTime))
	})
}

func (s *DefaultDialogService) handleChoosesNote(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.chooseField(req, ctxAwaitNoteUpdate, func(params *models.SessionParams) string {
		note := params.Note
		if note == "" {
			note = "No note provided"
		}
		return fmt.Sprintf("Your current note is: %s. What would you like to update it to?", note)
	})
}

// updateSummary is the recap shown after a successful field update, with
// Yes/No chips asking whether anything else should change.
func updateSummary(lead string, params *models.SessionParams) string {
	dateTime := "unknown"
	if params.DateTime != "" {
		if t, err := parseISO(params.DateTime); err == nil {
			dateTime = t.Format("2006-01-02 15:04")
		}
	}
	return fmt.Sprintf(
		"%s\n\n"+
			"Here’s what I have now:\n"+
			"📋 Name: %s\n"+
			"📧 Email: %s\n"+
			"📅 Date/Time: %s\n"+
			"📝 Note: %s\n\n"+
			"Is there anything else you want to change?",
		lead, orUnknown(params.Person), orUnknown(params.Email), dateTime, params.NoteOrDefault())
}

func (s *DefaultDialogService) handleUpdatesName(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Name update with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	name := strings.TrimSpace(stringParam(req, "person.original"))
	logger.Info("New name extracted", zap.String("name", name))

	if !ValidateName(name) {
		logger.Warn("Invalid replacement name", zap.String("name", name))
		return FormatResponse(
			[]string{"Hmm, that doesn’t look like a valid name. Please avoid special characters or numbers."},
			BuildContexts(session, ctxAwaitNameUpdate, params),
		)
	}

	params.Person = name

	return FormatResponseWithChips(
		[]string{updateSummary(fmt.Sprintf("Your name has been updated to: %s.", name), params)},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}

func (s *DefaultDialogService) handleUpdatesEmail(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Email update with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	email := strings.TrimSpace(stringParam(req, "email.original"))
	if !IsValidEmail(email) {
		logger.Warn("Invalid replacement email", zap.String("email", email))
		return FormatResponse(
			[]string{"Hmm, that doesn’t look like a valid email address. Could you try again?"},
			BuildContexts(session, ctxAwaitEmailUpdate, params),
		)
	}

	params.Email = email

	return FormatResponseWithChips(
		[]string{updateSummary(fmt.Sprintf("Your email has been successfully updated to: %s.", email), params)},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}

func (s *DefaultDialogService) handleUpdatesDateTime(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Date-time update with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}
	return s.negotiateDateTime(ctx, session, params, req, ctxAwaitDateTimeUpdate, true)
}

func (s *DefaultDialogService) handleUpdatesNote(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Note update with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	note := strings.TrimSpace(stringParam(req, "any"))
	if note == "" {
		logger.Warn("Note update without a note")
		return FormatResponse(
			[]string{"I didn’t catch that. Please provide a valid note."},
			BuildContexts(session, ctxAwaitNoteUpdate, params),
		)
	}

	params.Note = note

	dateTime := "unknown"
	if params.DateTime != "" {
		if t, err := parseISO(params.DateTime); err == nil {
			dateTime = t.Format("2006-01-02 15:04") + " h"
		}
	}

	return FormatResponseWithChips(
		[]string{fmt.Sprintf(
			"Your note has been updated to: %s. Here’s what I have now:\n"+
				"- Name: %s\n"+
				"- Email: %s\n"+
				"📅 Date/Time: %s\n"+
				"- Note: %s\n"+
				"Is there anything else you want to change?",
			note, orUnknown(params.Person), orUnknown(params.Email), dateTime, note)},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}

func (s *DefaultDialogService) handleConfirmsSlotUpdate(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, params, err := s.sessionAndParams(req)
	if err != nil {
		logger.Warn("Slot update confirmation with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	if params.DateTime == "" {
		logger.Warn("Slot update confirmed without a stored date-time")
		return FormatResponse(
			[]string{"Something went wrong while confirming the updated date-time. Please try again."},
			BuildContexts(session, ctxAwaitDateTimeUpdate, params),
		)
	}

	params.ConfirmedDateTime = params.DateTime

	return FormatResponseWithChips(
		[]string{fmt.Sprintf(
			"Your appointment has been successfully updated! 🎉\n\n"+
				"- Name: %s\n"+
				"- Email: %s\n"+
				"**Date/Time**: %s\n"+
				"- Note: %s\n"+
				"Is there anything else you would like to change?",
			orUnknown(params.Person), orUnknown(params.Email),
			formatDisplayTime(params.ConfirmedDateTime), params.NoteOrDefault())},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}

func (s *DefaultDialogService) handleDeniesSlotUpdate(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Slot update denial with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	return FormatResponse(
		[]string{"No problem! Please provide a new date and time for your appointment, like 'Tomorrow at 1 pm.'"},
		BuildContexts(session, ctxAwaitDateTimeUpdate, params),
	)
}
