package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
)

var errUnsupportedIntent = errors.New("intent has no task operation")

type invokeResult struct {
	res agent.ToolResult
	err error
}

// invoke runs the Task Store operation for in, bounded by the tool timeout.
func (o *Orchestrator) invoke(ctx context.Context, sc model.Scope, in intent.Intent, p intent.Parameters) (agent.ToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.ToolTimeout)
	defer cancel()

	done := make(chan invokeResult, 1)
	go func() {
		res, err := o.call(ctx, sc, in, p)
		done <- invokeResult{res: res, err: err}
	}()

	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return agent.ToolResult{}, fmt.Errorf("%s: %w", LogPrefixInvoke, ctx.Err())
	}
}

// call dispatches over the closed set of intents.
func (o *Orchestrator) call(ctx context.Context, sc model.Scope, in intent.Intent, p intent.Parameters) (agent.ToolResult, error) {
	switch in {
	case intent.IntentAdd:
		out, err := o.tasks.Create(ctx, sc, task.CreateInput{Title: p.Title})
		if err != nil {
			return agent.ToolResult{}, err
		}
		return agent.ToolResult{Task: &out.Task}, nil

	case intent.IntentList:
		out, err := o.tasks.List(ctx, sc, task.ListInput{IncludeCompleted: boolOr(p.IncludeCompleted, true)})
		if err != nil {
			return agent.ToolResult{}, err
		}
		if out.Tasks == nil {
			out.Tasks = []task.Task{}
		}
		return agent.ToolResult{Tasks: out.Tasks}, nil

	case intent.IntentGet:
		out, err := o.tasks.Detail(ctx, sc, p.TaskID)
		if err != nil {
			return agent.ToolResult{}, err
		}
		return agent.ToolResult{Task: &out.Task}, nil

	case intent.IntentUpdate:
		input := task.UpdateInput{ID: p.TaskID}
		if p.Title != "" {
			input.Title = &p.Title
		}
		out, err := o.tasks.Update(ctx, sc, input)
		if err != nil {
			return agent.ToolResult{}, err
		}
		return agent.ToolResult{Task: &out.Task}, nil

	case intent.IntentDelete:
		out, err := o.tasks.Delete(ctx, sc, p.TaskID)
		if err != nil {
			return agent.ToolResult{}, err
		}
		return agent.ToolResult{Deleted: &out}, nil

	case intent.IntentComplete:
		out, err := o.tasks.Complete(ctx, sc, task.CompleteInput{ID: p.TaskID, Completed: boolOr(p.Completed, true)})
		if err != nil {
			return agent.ToolResult{}, err
		}
		return agent.ToolResult{Task: &out.Task}, nil

	case intent.IntentUnknown:
	}
	return agent.ToolResult{}, errUnsupportedIntent
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
