package usecase

import (
	"context"
	"sort"
	"strings"

	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/model"
)

const (
	defaultRelevantMessages = 10
	maxKeyPhrases           = 5
	keyPhraseLength         = 100
	relevantContentLength   = 200
	conversationTone        = "task-focused"
)

// topicKeywords maps a substring of a user message to the topic it signals.
var topicKeywords = []struct {
	keyword string
	topic   string
}{
	{"add", "task_creation"},
	{"create", "task_creation"},
	{"delete", "task_deletion"},
	{"remove", "task_deletion"},
	{"complete", "task_completion"},
	{"done", "task_completion"},
	{"update", "task_update"},
	{"change", "task_update"},
	{"list", "task_listing"},
	{"show", "task_listing"},
}

var (
	keyPhrasePrefixes = []string{"add", "create", "delete", "update", "complete", "list"}
	actionWords       = []string{"add", "create", "delete", "update", "complete"}
)

// Summarize builds a keyword-based digest of a conversation.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, conversationID string) (conversation.Summary, error) {
	turn, err := uc.Load(ctx, sc, conversationID)
	if err != nil {
		return conversation.Summary{}, err
	}

	var userMessages []conversation.Message
	assistantCount := 0
	for _, m := range turn.History {
		switch m.Sender {
		case conversation.SenderUser:
			userMessages = append(userMessages, m)
		case conversation.SenderAssistant:
			assistantCount++
		}
	}

	return conversation.Summary{
		ConversationID:        turn.Conversation.ID,
		MessageCount:          len(turn.History),
		UserMessageCount:      len(userMessages),
		AssistantMessageCount: assistantCount,
		CreatedAt:             turn.Conversation.CreatedAt,
		UpdatedAt:             turn.Conversation.UpdatedAt,
		Topics:                extractTopics(userMessages),
		KeyPhrases:            extractKeyPhrases(userMessages),
		ConversationTone:      conversationTone,
		UserIntentSummary:     summarizeIntents(userMessages),
	}, nil
}

// SelectRelevant picks up to maxMessages messages: the newest ones plus an even sample of the rest.
func (uc *implUseCase) SelectRelevant(ctx context.Context, sc model.Scope, conversationID string, maxMessages int) (conversation.RelevantOutput, error) {
	turn, err := uc.Load(ctx, sc, conversationID)
	if err != nil {
		return conversation.RelevantOutput{}, err
	}
	if maxMessages <= 0 {
		maxMessages = defaultRelevantMessages
	}

	selected := selectRelevant(turn.History, maxMessages)
	out := conversation.RelevantOutput{
		ConversationID:       turn.Conversation.ID,
		TotalMessages:        len(turn.History),
		SelectedMessageCount: len(selected),
		Messages:             make([]conversation.RelevantMessage, 0, len(selected)),
	}
	for _, m := range selected {
		out.Messages = append(out.Messages, conversation.RelevantMessage{
			ID:             m.ID,
			Sender:         m.Sender,
			Content:        truncate(m.Content, relevantContentLength),
			CreatedAt:      m.CreatedAt,
			RelevanceScore: 1.0,
		})
	}
	return out, nil
}

func extractTopics(messages []conversation.Message) []string {
	seen := make(map[string]struct{})
	for _, m := range messages {
		content := strings.ToLower(m.Content)
		for _, tk := range topicKeywords {
			if strings.Contains(content, tk.keyword) {
				seen[tk.topic] = struct{}{}
			}
		}
	}

	topics := make([]string, 0, len(seen))
	for topic := range seen {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func extractKeyPhrases(messages []conversation.Message) []string {
	phrases := make([]string, 0)
	for _, m := range messages {
		content := strings.ToLower(m.Content)
		for _, prefix := range keyPhrasePrefixes {
			if strings.HasPrefix(content, prefix) {
				phrases = append(phrases, truncate(m.Content, keyPhraseLength))
				break
			}
		}
		if len(phrases) == maxKeyPhrases {
			break
		}
	}
	return phrases
}

func summarizeIntents(messages []conversation.Message) string {
	if len(messages) == 0 {
		return "No user messages in conversation"
	}

	count := 0
	for _, m := range messages {
		content := strings.ToLower(m.Content)
		for _, word := range actionWords {
			if strings.Contains(content, word) {
				count++
				break
			}
		}
	}

	switch {
	case count == 0:
		return "User querying task information"
	case count <= 2:
		return "User performing simple task management"
	default:
		return "User performing complex task management workflow"
	}
}

// selectRelevant keeps the newest min(limit, n/2+1) messages and fills the rest
// of the budget by striding through the older ones.
func selectRelevant(messages []conversation.Message, limit int) []conversation.Message {
	n := len(messages)
	if n <= limit {
		return messages
	}

	recentCount := min(limit, n/2+1)
	recent := messages[n-recentCount:]
	olderCount := limit - recentCount
	if olderCount <= 0 {
		return recent
	}

	older := messages[:n-recentCount]
	step := len(older) / olderCount
	sampled := make([]conversation.Message, 0, limit)
	for i := 0; i < len(older) && len(sampled) < olderCount; i += step {
		sampled = append(sampled, older[i])
	}
	return append(sampled, recent...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
