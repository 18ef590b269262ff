package intent

import "strings"

// Extract maps a message to an Intent. Patterns are tried for every rule before any
// keyword is, so a pattern match on a later intent beats a keyword match on an earlier one.
func Extract(message string) Result {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(normalized) {
				return Result{Intent: rule.Intent, Confidence: ConfidencePattern}
			}
		}
	}

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return Result{Intent: rule.Intent, Confidence: ConfidenceKeyword}
			}
		}
	}

	return Result{Intent: IntentUnknown, Confidence: ConfidenceNone}
}

// Actionable reports whether the agent should run a tool for r.
func (r Result) Actionable() bool {
	return r.Intent != IntentUnknown && r.Confidence >= MinConfidence
}

// ToolName returns the task tool that serves in.
func ToolName(in Intent) (string, bool) {
	switch in {
	case IntentAdd:
		return ToolAddTask, true
	case IntentList:
		return ToolListTasks, true
	case IntentGet:
		return ToolGetTask, true
	case IntentUpdate:
		return ToolUpdateTask, true
	case IntentDelete:
		return ToolDeleteTask, true
	case IntentComplete:
		return ToolCompleteTask, true
	default:
		return "", false
	}
}

// Fallback returns the reply used when the tool behind in fails.
func Fallback(in Intent) string {
	switch in {
	case IntentAdd:
		return FallbackAdd
	case IntentList:
		return FallbackList
	case IntentGet:
		return FallbackGet
	case IntentUpdate:
		return FallbackUpdate
	case IntentDelete:
		return FallbackDelete
	case IntentComplete:
		return FallbackComplete
	default:
		return FallbackUnknown
	}
}

// ShouldConfirm reports whether in is destructive enough to ask the user first.
func ShouldConfirm(in Intent) bool {
	return in == IntentDelete
}
