package mcp

import (
	"time"

	"task-chat-agent/internal/conversation"
)

type summaryResp struct {
	ConversationID        string   `json:"conversation_id"`
	MessageCount          int      `json:"message_count"`
	UserMessageCount      int      `json:"user_message_count"`
	AssistantMessageCount int      `json:"assistant_message_count"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
	Topics                []string `json:"topics"`
	KeyPhrases            []string `json:"key_phrases"`
	ConversationTone      string   `json:"conversation_tone"`
	UserIntentSummary     string   `json:"user_intent_summary"`
}

func newSummaryResp(s conversation.Summary) summaryResp {
	return summaryResp{
		ConversationID:        s.ConversationID,
		MessageCount:          s.MessageCount,
		UserMessageCount:      s.UserMessageCount,
		AssistantMessageCount: s.AssistantMessageCount,
		CreatedAt:             s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Topics:                nonNil(s.Topics),
		KeyPhrases:            nonNil(s.KeyPhrases),
		ConversationTone:      s.ConversationTone,
		UserIntentSummary:     s.UserIntentSummary,
	}
}

type relevantMessageResp struct {
	ID             string  `json:"id"`
	Sender         string  `json:"sender"`
	Content        string  `json:"content"`
	CreatedAt      string  `json:"created_at"`
	RelevanceScore float64 `json:"relevance_score"`
}

type relevantResp struct {
	ConversationID       string                `json:"conversation_id"`
	TotalMessages        int                   `json:"total_messages"`
	SelectedMessageCount int                   `json:"selected_message_count"`
	Messages             []relevantMessageResp `json:"messages"`
}

func newRelevantResp(out conversation.RelevantOutput) relevantResp {
	msgs := make([]relevantMessageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = relevantMessageResp{
			ID:             m.ID,
			Sender:         string(m.Sender),
			Content:        m.Content,
			CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339Nano),
			RelevanceScore: m.RelevanceScore,
		}
	}
	return relevantResp{
		ConversationID:       out.ConversationID,
		TotalMessages:        out.TotalMessages,
		SelectedMessageCount: out.SelectedMessageCount,
		Messages:             msgs,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
