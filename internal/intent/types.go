package intent

// Intent is the closed set of task operations a chat message can ask for.
type Intent string

const (
	IntentAdd      Intent = "add"
	IntentList     Intent = "list"
	IntentGet      Intent = "get"
	IntentUpdate   Intent = "update"
	IntentDelete   Intent = "delete"
	IntentComplete Intent = "complete"
	IntentUnknown  Intent = "unknown"
)

// Result is the outcome of matching one message.
// Confidence is a fixed tier, see ConfidencePattern and ConfidenceKeyword.
type Result struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Parameters are the tool arguments extracted from a message.
// Empty strings and nil pointers mean the parameter was not found.
type Parameters struct {
	UserID           string
	Title            string
	TaskID           string
	IncludeCompleted *bool
	Completed        *bool
}

// Map renders the parameters as the name to value mapping recorded with a tool call.
func (p Parameters) Map() map[string]any {
	m := map[string]any{"user_id": p.UserID}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.TaskID != "" {
		m["task_id"] = p.TaskID
	}
	if p.IncludeCompleted != nil {
		m["include_completed"] = *p.IncludeCompleted
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return m
}
