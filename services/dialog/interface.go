package dialog

import (
	"context"
	"time"

	"salonbot/models"
	"salonbot/services/calendar"
	"salonbot/services/intelligence"
	"salonbot/services/ledger"
	"salonbot/utils"

	"go.uber.org/zap"
)

// Service turns a parsed webhook request into a fulfillment response. The
// HTTP layer validates request structure; everything past that point is
// handled here and always answers with a well-formed envelope.
type Service interface {
	Dispatch(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse
}

// Options carry the conversational tuning knobs from configuration.
type Options struct {
	WorkingHoursStart int
	WorkingHoursEnd   int
	DefaultTimezone   string
	StaticBaseURL     string
}

type turnHandler func(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse

// DefaultDialogService is the stateless conversation engine. All state lives
// in the contexts of each request; the service itself only holds gateways.
type DefaultDialogService struct {
	Calendar   calendar.Gateway
	Negotiator *calendar.Negotiator
	Ledger     ledger.Gateway
	Responder  intelligence.Responder
	Opts       Options

	// Now is swappable for tests.
	Now func() time.Time

	handlers map[string]turnHandler
}

// NewDialogService wires the conversation engine to its gateways and
// registers the per-action handlers.
func NewDialogService(opts Options, cal calendar.Gateway, led ledger.Gateway, resp intelligence.Responder) *DefaultDialogService {
	s := &DefaultDialogService{
		Calendar:   cal,
		Negotiator: calendar.NewNegotiator(cal),
		Ledger:     led,
		Responder:  resp,
		Opts:       opts,
		Now:        time.Now,
	}
	s.handlers = map[string]turnHandler{
		"defaultWelcomeIntent":            s.handleWelcome,
		"userWantsToScheduleAppointment":  s.handleWantsToSchedule,
		"userProvidesNameIntent":          s.handleProvidesName,
		"userProvidesEmailIntent":         s.handleProvidesEmail,
		"userProvidesDateTime":            s.handleProvidesDateTime,
		"userConfirmsSlot":                s.handleConfirmsSlot,
		"userDeniesSlot":                  s.handleDeniesSlot,
		"userConfirmsNote":                s.handleConfirmsNote,
		"userDeniesNote":                  s.handleDeniesNote,
		"userProvidesNote":                s.handleProvidesNote,
		"userConfirmsNoChangesIntent":     s.handleConfirmsNoChanges,
		"userWantsToUpdateIntent":         s.handleWantsToUpdate,
		"userChoosesNameIntent":           s.handleChoosesName,
		"userChoosesEmailIntent":          s.handleChoosesEmail,
		"userChoosesDateTimeUpdate":       s.handleChoosesDateTime,
		"userChoosesNoteUpdate":           s.handleChoosesNote,
		"userUpdatesNameIntent":           s.handleUpdatesName,
		"userUpdatesEmailIntent":          s.handleUpdatesEmail,
		"userUpdatesDateTime":             s.handleUpdatesDateTime,
		"userUpdatesNote":                 s.handleUpdatesNote,
		"userConfirmsSlotUpdate":          s.handleConfirmsSlotUpdate,
		"userDeniesSlotUpdate":            s.handleDeniesSlotUpdate,
		"defaultFallbackIntent":           s.handleFallback,
		"userWantsProducts":               s.handleProductList,
		"userWantsTeaTreeShampoo":         s.handleTeaTreeShampoo,
		"userWantsShampooOne":             s.handleShampooOne,
		"userWantsDoubleHitterShampoo":    s.handleDoubleHitterShampoo,
	}
	return s
}

// Dispatch routes the action to its handler. Unknown actions get a polite
// miss; a panicking handler is contained and answered with a generic
// apology so the agent never sees a broken webhook.
func (s *DefaultDialogService) Dispatch(ctx context.Context, req *models.WebhookRequest) (resp *models.WebhookResponse) {
	logger := utils.GetLogger()
	action := req.QueryResult.Action

	handler, ok := s.handlers[action]
	if !ok {
		logger.Warn("No handler registered for action", zap.String("action", action))
		return FormatResponse([]string{"Sorry, I didn’t understand."}, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Handler panicked",
				zap.String("action", action), zap.Any("panic", r))
			resp = FormatResponse([]string{"Sorry, something went wrong while processing your request."}, nil)
		}
	}()

	return handler(ctx, req)
}

// sessionAndParams is the prelude every handler runs: pull the session path
// and whatever parameters earlier turns accumulated.
func (s *DefaultDialogService) sessionAndParams(req *models.WebhookRequest) (string, *models.SessionParams, error) {
	session, err := ExtractSession(req)
	if err != nil {
		return "", nil, err
	}
	return session, ExtractSessionParameters(ExtractOutputContexts(req)), nil
}

// sessionError is the stock answer when the session path itself is broken.
func sessionError() *models.WebhookResponse {
	return FormatResponse([]string{"Something went wrong. Please try again later."}, nil)
}
