package orchestrator

import (
	"context"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/agent/responder"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
)

// Decide answers one chat message. It never fails: unknown requests get the help
// text and Task Store failures get the per-intent fallback reply.
func (o *Orchestrator) Decide(ctx context.Context, sc model.Scope, in agent.DecideInput) agent.Decision {
	result := intent.Extract(in.Message)
	o.l.Infof(ctx, "%s: user=%s conversation=%s intent=%s confidence=%.1f history=%d message=%q",
		LogPrefixDecide, sc.UserID, in.ConversationID, result.Intent, result.Confidence, len(in.History), in.Message)

	if !result.Actionable() {
		return agent.Decision{Intent: result, Response: intent.HelpText, ToolCalls: []agent.ToolInvocation{}}
	}

	params := intent.ExtractParameters(result.Intent, in.Message, sc.UserID)
	toolName, _ := intent.ToolName(result.Intent)

	res, err := o.invoke(ctx, sc, result.Intent, params)
	if err != nil {
		o.l.Errorf(ctx, "%s: event=%s tool=%s code=%d user=%s error=%v",
			LogPrefixDecide, EventToolExecutionFailed, toolName, task.Code(err), sc.UserID, err)
		return agent.Decision{Intent: result, Response: intent.Fallback(result.Intent), ToolCalls: []agent.ToolInvocation{}}
	}

	var extra *responder.Context
	if in.IncludeContext {
		extra = o.enrich(ctx, sc, in.ConversationID)
	}

	call := agent.ToolInvocation{Tool: toolName, Parameters: params, Result: res}
	o.l.Infof(ctx, "%s: event=%s tool=%s params=%v", LogPrefixDecide, EventToolCall, toolName, params.Map())

	return agent.Decision{
		Intent:    result,
		Response:  responder.Generate(result.Intent, res, in.Message, extra),
		ToolCalls: []agent.ToolInvocation{call},
	}
}
