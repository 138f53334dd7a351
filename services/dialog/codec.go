package dialog

import (
	"fmt"
	"strings"

	"salonbot/models"
)

// Context names carried between turns. The single lifespan-1 context is the
// conversation state; session-parameters rides along with lifespan 99 so the
// collected slot values survive every turn.
const (
	ctxSessionParameters = "session-parameters"

	ctxAwaitName             = "await-name"
	ctxAwaitEmail            = "await-email"
	ctxAwaitDateTime         = "await-date-time"
	ctxAwaitNoteAction       = "await-note-action"
	ctxAwaitNote             = "await-note"
	ctxAwaitConfirmation     = "await-confirmation"
	ctxAwaitSlotConfirmation = "await-slot-confirmation"
	ctxAwaitField            = "await-field"

	ctxAwaitNameUpdate             = "await-name-update"
	ctxAwaitEmailUpdate            = "await-email-update"
	ctxAwaitDateTimeUpdate         = "await-date-time-update"
	ctxAwaitNoteUpdate             = "await-note-update"
	ctxAwaitSlotConfirmationUpdate = "await-slot-confirmation-update"

	ctxAwaitProductList         = "await-product-list"
	ctxAwaitTeaTreeShampoo      = "await-tea-tree-shampoo"
	ctxAwaitOneShampoo          = "await-one-shampoo"
	ctxAwaitDoubleHitterShampoo = "await-double-hitter-shampoo"
)

const (
	stateLifespan   = 1
	sessionLifespan = 99
)

// ExtractSession pulls the session path out of a webhook request and checks
// its shape. Dialogflow session paths look like
// "projects/<project>/agent/sessions/<id>".
func ExtractSession(req *models.WebhookRequest) (string, error) {
	if req == nil || req.Session == "" {
		return "", fmt.Errorf("%w: missing session", ErrInvalidRequest)
	}
	session := req.Session
	if !strings.HasPrefix(session, "projects/") || !strings.Contains(session, "/sessions/") {
		return "", fmt.Errorf("%w: malformed session path %q", ErrInvalidRequest, session)
	}
	return session, nil
}

// ExtractOutputContexts returns the contexts attached to the request, or nil
// when the query result carries none.
func ExtractOutputContexts(req *models.WebhookRequest) []models.Context {
	if req == nil || req.QueryResult == nil {
		return nil
	}
	return req.QueryResult.OutputContexts
}

// ExtractSessionParameters finds the session-parameters context by name
// suffix and returns its parameters. A request without one yields an empty
// parameter set, never nil.
func ExtractSessionParameters(contexts []models.Context) *models.SessionParams {
	for _, c := range contexts {
		if strings.HasSuffix(c.Name, "/contexts/"+ctxSessionParameters) && c.Parameters != nil {
			p := *c.Parameters
			return &p
		}
	}
	return &models.SessionParams{}
}

// BuildContexts produces the two-context envelope every non-terminal turn
// returns: the awaiting context naming the next expected input, and the
// long-lived session-parameters context carrying the collected values.
func BuildContexts(session, next string, params *models.SessionParams) []models.Context {
	return []models.Context{
		{
			Name:          session + "/contexts/" + next,
			LifespanCount: stateLifespan,
		},
		{
			Name:          session + "/contexts/" + ctxSessionParameters,
			LifespanCount: sessionLifespan,
			Parameters:    params,
		},
	}
}
