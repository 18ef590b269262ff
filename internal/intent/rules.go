package intent

import "regexp"

// Rule binds one Intent to its anchored patterns and substring keywords.
type Rule struct {
	Intent   Intent
	Patterns []*regexp.Regexp
	Keywords []string
}

// rules is scanned front to back and the first match wins, so the order below is
// what breaks ties between intents: add, list, get, update, delete, complete.
var rules = []Rule{
	{
		Intent: IntentAdd,
		Patterns: compile(
			`^add\s+`, `^create\s+`, `^new\s+task\s+`, `^remember\s+`,
			`^add task`, `^create task`, `^i need to `,
		),
		Keywords: []string{
			"add", "create", "new task", "add task", "create task",
			"remember", "make a task", "i need to",
		},
	},
	{
		Intent: IntentList,
		Patterns: compile(
			`^list\s+`, `^show\s+`, `^all\s+tasks`, `^my\s+tasks`, `^what tasks`, `^what do i`,
		),
		Keywords: []string{
			"list", "show", "all tasks", "my tasks", "what tasks",
			"tasks do i have", "what do i need",
		},
	},
	{
		Intent:   IntentGet,
		Patterns: compile(`^get\s+`, `^show task`, `^details\s+`, `^tell me about`),
		Keywords: []string{"get", "show task", "details", "tell me about"},
	},
	{
		Intent:   IntentUpdate,
		Patterns: compile(`^update\s+`, `^edit\s+`, `^change\s+`, `^modify\s+`, `^rename\s+`),
		Keywords: []string{"update", "edit", "change", "modify", "rename"},
	},
	{
		Intent:   IntentDelete,
		Patterns: compile(`^delete\s+`, `^remove\s+`, `^trash\s+`, `^discard\s+`, `^get rid of`),
		Keywords: []string{"delete", "remove", "trash", "discard", "get rid of"},
	},
	{
		Intent: IntentComplete,
		Patterns: compile(
			`^complete\s+`, `^done\s+with`, `^finish\s+`, `^check off`, `^mark\s+done`, `^mark as done`,
		),
		Keywords: []string{"complete", "done", "finish", "check off", "mark done", "mark as done"},
	},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(expr)
	}
	return out
}

// Rules returns a copy of the rule table in scan order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
