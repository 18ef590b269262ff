package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixDecide = "internal.agent.orchestrator.Decide"
	LogPrefixInvoke = "internal.agent.orchestrator.invoke"
	LogPrefixEnrich = "internal.agent.orchestrator.enrich"
)

// Event types
const (
	EventToolExecutionFailed = "TOOL_EXECUTION_FAILED"
	EventToolCall            = "TOOL_CALL"
)

// Defaults
const (
	DefaultToolTimeout       = 5 * time.Second
	DefaultEnrichmentTimeout = 2 * time.Second
)
