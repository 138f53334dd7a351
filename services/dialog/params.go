package dialog

import "salonbot/models"

// stringParam reads a plain string intent parameter, returning "" when the
// parameter is absent or not a string.
func stringParam(req *models.WebhookRequest, key string) string {
	if req == nil || req.QueryResult == nil || req.QueryResult.Parameters == nil {
		return ""
	}
	v, _ := req.QueryResult.Parameters[key].(string)
	return v
}

// dateTimeParam reads the "date-time" intent parameter. Dialogflow delivers
// it either as a bare string, as a list of strings, or as a list of objects
// with a "date_time" field, depending on how the user phrased the time.
func dateTimeParam(req *models.WebhookRequest) string {
	if req == nil || req.QueryResult == nil || req.QueryResult.Parameters == nil {
		return ""
	}
	switch v := req.QueryResult.Parameters["date-time"].(type) {
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		switch first := v[0].(type) {
		case string:
			return first
		case map[string]any:
			s, _ := first["date_time"].(string)
			return s
		}
	}
	return ""
}
