package intent

// Confidence tiers
const (
	ConfidencePattern = 1.0
	ConfidenceKeyword = 0.7
	ConfidenceNone    = 0.0

	// MinConfidence is the lowest confidence the agent acts on.
	MinConfidence = 0.5
)

// Tool names
const (
	ToolAddTask      = "add_task"
	ToolListTasks    = "list_tasks"
	ToolGetTask      = "get_task"
	ToolUpdateTask   = "update_task"
	ToolDeleteTask   = "delete_task"
	ToolCompleteTask = "complete_task"
)

// DefaultTitle is used when an add request carries no recognisable title.
const DefaultTitle = "Untitled task"

// HelpText is the reply to a message that maps to no task operation.
const HelpText = "I didn't understand your request. You can ask me to:\n" +
	"- Create a task (e.g., 'add buy groceries')\n" +
	"- List your tasks (e.g., 'show all tasks')\n" +
	"- Complete a task (e.g., 'mark task 1 done')\n" +
	"- Update a task (e.g., 'change task 1 to buy milk')\n" +
	"- Delete a task (e.g., 'delete task 1')"

// Fallback replies when the task operation fails
const (
	FallbackAdd      = "I couldn't create that task. Please try again."
	FallbackList     = "I couldn't retrieve your tasks. Please try again."
	FallbackGet      = "I couldn't find that task. Please try again."
	FallbackUpdate   = "I couldn't update that task. Please try again."
	FallbackDelete   = "I couldn't delete that task. Please try again."
	FallbackComplete = "I couldn't mark that task. Please try again."
	FallbackUnknown  = "Something went wrong. Please try again."
)
