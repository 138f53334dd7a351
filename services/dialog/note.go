package dialog

import (
	"context"
	"fmt"
	"strings"

	"salonbot/models"
	"salonbot/utils"

	"go.uber.org/zap"
)

func (s *DefaultDialogService) handleConfirmsNote(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Note confirmation with invalid session", zap.Error(err))
		return sessionError()
	}

	return FormatResponse(
		[]string{"Please provide the note."},
		BuildContexts(session, ctxAwaitNote, params),
	)
}

func (s *DefaultDialogService) handleDeniesNote(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Note denial with invalid session", zap.Error(err))
		return sessionError()
	}

	params.Note = models.DefaultNote

	return FormatResponseWithChips(
		[]string{fmt.Sprintf(
			"Great! Here’s the information I have:\n"+
				"- Name: %s\n"+
				"- Email: %s\n"+
				"Date/Time: %s\n"+
				"- Note: %s\n"+
				"Do you want to update anything?",
			orUnknown(params.Person), orUnknown(params.Email),
			formatDisplayTime(params.DateTime), params.Note)},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}

func (s *DefaultDialogService) handleProvidesNote(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, params, err := s.sessionAndParams(req)
	if err != nil {
		utils.GetLogger().Warn("Note turn with invalid session", zap.Error(err))
		return sessionError()
	}

	note := strings.TrimSpace(stringParam(req, "any"))
	if note == "" {
		note = "No note provided"
	}
	params.Note = note

	return FormatResponseWithChips(
		[]string{fmt.Sprintf(
			"Great! Here’s the information I have:\n"+
				"- Name: %s\n"+
				"- Email: %s\n"+
				"- Date and Time: %s\n"+
				"- Note: %s\n"+
				"Do you want to update anything?",
			orUnknown(params.Person), orUnknown(params.Email),
			formatDisplayTime(params.DateTime), note)},
		[]string{"Yes", "No"},
		BuildContexts(session, ctxAwaitConfirmation, params),
	)
}
