package intent

import (
	"regexp"
	"strings"
)

var (
	addTitlePatterns = compile(
		`^(?:add|create|remember)\s+(.+)$`,
		`^(?:add|create|remember)\s+task\s+(.+)$`,
		`^new\s+task\s+(.+)$`,
		`^task\s+to\s+(.+)$`,
	)
	addTitleKeywords = []string{"add", "create", "remember", "task"}

	taskIDPattern = regexp.MustCompile(`\d+`)
	updatePattern = regexp.MustCompile(`(?:task\s+)?(\d+)\s+(?:to\s+)?(.+)`)
)

// ExtractParameters pulls the tool arguments for in out of message.
// The user id is always set. Missing task ids are left empty for the task store to reject.
func ExtractParameters(in Intent, message, userID string) Parameters {
	params := Parameters{UserID: userID}
	lower := strings.ToLower(message)

	switch in {
	case IntentAdd:
		params.Title = extractTitle(message)
	case IntentList:
		include := !strings.Contains(lower, "completed")
		params.IncludeCompleted = &include
	case IntentComplete:
		params.TaskID = taskIDPattern.FindString(message)
		completed := !strings.Contains(lower, "uncomplete")
		params.Completed = &completed
	case IntentDelete, IntentGet:
		params.TaskID = taskIDPattern.FindString(message)
	case IntentUpdate:
		if m := updatePattern.FindStringSubmatch(message); m != nil {
			params.TaskID = m[1]
			params.Title = strings.TrimSpace(m[2])
		}
	}

	return params
}

func extractTitle(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, pattern := range addTitlePatterns {
		if m := pattern.FindStringSubmatch(normalized); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Keyword offsets are found in the lower-cased text but the title keeps the
	// caller's casing, which only lines up when lowering kept the byte length.
	lower := strings.ToLower(message)
	source := message
	if len(lower) != len(message) {
		source = lower
	}
	for _, keyword := range addTitleKeywords {
		pos := strings.Index(lower, keyword)
		if pos < 0 {
			continue
		}
		if title := strings.TrimSpace(source[pos+len(keyword):]); title != "" {
			return title
		}
	}

	return DefaultTitle
}
