package intelligence

import "context"

// Responder answers free-text queries that matched no intent and no active
// conversation context.
type Responder interface {
	Respond(ctx context.Context, query string) (string, error)
}
