package orchestrator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"task-chat-agent/internal/agent/responder"
	"task-chat-agent/internal/model"
)

// enrich gathers the advisory profile and conversation summary concurrently.
// Failures are dropped: the reply is simply not personalized.
func (o *Orchestrator) enrich(ctx context.Context, sc model.Scope, conversationID string) *responder.Context {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.EnrichmentTimeout)
	defer cancel()

	var (
		g    errgroup.Group
		name string
	)

	if o.profiles != nil {
		g.Go(func() error {
			profile, err := o.profiles.GetContext(ctx, sc.UserID)
			if err != nil {
				o.l.Debugf(ctx, "%s: user context unavailable: %v", LogPrefixEnrich, err)
				return nil
			}
			name = profile.Name
			return nil
		})
	}

	if o.summaries != nil && conversationID != "" {
		g.Go(func() error {
			summary, err := o.summaries.Summarize(ctx, sc, conversationID)
			if err != nil {
				o.l.Debugf(ctx, "%s: conversation summary unavailable: %v", LogPrefixEnrich, err)
				return nil
			}
			o.l.Debugf(ctx, "%s: conversation=%s messages=%d topics=%v intent_summary=%q",
				LogPrefixEnrich, conversationID, summary.MessageCount, summary.Topics, summary.UserIntentSummary)
			return nil
		})
	}

	_ = g.Wait()
	return &responder.Context{Name: name}
}
