package models

// WebhookRequest is the fulfillment request body posted by Dialogflow.
type WebhookRequest struct {
	Session     string       `json:"session"`
	QueryResult *QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent's action name, its extracted
// parameters and the contexts echoed back from the previous turn.
type QueryResult struct {
	Action         string         `json:"action"`
	QueryText      string         `json:"queryText"`
	Parameters     map[string]any `json:"parameters"`
	OutputContexts []Context      `json:"outputContexts"`
}

// Context is a named conversation marker scoped under the session.
// A lifespan-1 context names the input expected on the next turn; the
// long-lived session-parameters context carries the accumulated state.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    *SessionParams `json:"parameters,omitempty"`
}
