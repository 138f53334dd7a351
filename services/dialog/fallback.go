package dialog

import (
	"context"
	"strings"

	"salonbot/models"
	"salonbot/utils"

	"go.uber.org/zap"
)

// fallbackScanOrder lists the awaiting contexts checked when the agent did
// not match an intent. Update variants come first: "await-name" is a
// substring of "await-name-update", so the longer names must win.
var fallbackScanOrder = []string{
	ctxAwaitNameUpdate,
	ctxAwaitEmailUpdate,
	ctxAwaitDateTimeUpdate,
	ctxAwaitSlotConfirmationUpdate,
	ctxAwaitNoteUpdate,
	ctxAwaitDateTime,
	ctxAwaitSlotConfirmation,
	ctxAwaitName,
	ctxAwaitEmail,
	ctxAwaitConfirmation,
	ctxAwaitField,
	ctxAwaitNoteAction,
}

var fallbackPrompts = map[string]string{
	ctxAwaitNameUpdate:             "I still need your updated name. What would you like to change it to?",
	ctxAwaitEmailUpdate:            "I still need your updated email. Could you provide it again?",
	ctxAwaitDateTimeUpdate:         "I didn’t catch that. Can you provide a date and time like 'Tomorrow at 1 pm'?",
	ctxAwaitSlotConfirmationUpdate: "I didn’t catch that. Do you want to confirm this time slot? Please say 'yes' or 'no.'",
	ctxAwaitNoteUpdate:             "I didn’t understand your note. Please provide the note you'd like to add.",
	ctxAwaitDateTime:               "I didn’t understand the date and time. Please provide it in this format: 'Tomorrow at 1 pm'.",
	ctxAwaitSlotConfirmation:       "I didn’t catch that. Do you want to confirm this time slot? Please say 'yes' or 'no.'",
	ctxAwaitName:                   "Sorry, I didn’t get that. Can you provide your name?",
	ctxAwaitEmail:                  "Sorry, I didn’t get that. Can you provide your email?",
	ctxAwaitConfirmation:           "If you want to update something, just say 'Yes.' If everything looks good, say 'No.'",
	ctxAwaitField:                  "What would you like to update? Your name, email, date-time, or note?",
	ctxAwaitNoteAction:             "I didn’t catch that. Please say 'yes' if you want to add a note or 'no' if you don’t.",
}

// handleFallback answers unmatched input. Mid-flow it re-prompts for the
// input the active context is waiting on and keeps that context alive;
// outside any flow it hands the raw query to the generative responder.
func (s *DefaultDialogService) handleFallback(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	logger := utils.GetLogger()

	session, err := ExtractSession(req)
	if err != nil {
		logger.Warn("Fallback with invalid session", zap.Error(err))
		return FormatResponse([]string{"An error occurred. Please try again later."}, nil)
	}

	contexts := ExtractOutputContexts(req)
	active := activeAwaitContext(contexts)
	logger.Info("Fallback triggered", zap.String("activeContext", active))

	if active != "" {
		return &models.WebhookResponse{
			FulfillmentMessages: []models.FulfillmentMessage{
				{Text: &models.TextMessage{Text: []string{fallbackPrompts[active]}}},
			},
			OutputContexts: []models.Context{
				{Name: session + "/contexts/" + active, LifespanCount: stateLifespan},
			},
		}
	}

	query := ""
	if req.QueryResult != nil {
		query = strings.TrimSpace(req.QueryResult.QueryText)
	}

	message, err := s.Responder.Respond(ctx, query)
	if err != nil {
		logger.Error("Generative fallback failed", zap.Error(err))
		message = "I'm sorry, but I couldn’t process your request. Please try again later."
	}

	return FormatResponse([]string{message}, nil)
}

func activeAwaitContext(contexts []models.Context) string {
	for _, c := range contexts {
		for _, name := range fallbackScanOrder {
			if strings.Contains(c.Name, name) {
				return name
			}
		}
	}
	return ""
}
