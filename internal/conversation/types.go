package conversation

import (
	"encoding/json"
	"time"
)

// Sender identifies who wrote a Message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}

// Conversation groups the messages of one chat thread. Only UpdatedAt ever changes.
type Conversation struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one immutable turn entry.
type Message struct {
	ID             string
	ConversationID string
	UserID         string
	Sender         Sender
	Content        string
	ToolCalls      json.RawMessage
	CreatedAt      time.Time
}

// Turn is the unit of work for one chat exchange: the stored history plus the
// messages staged for the next Commit.
type Turn struct {
	Conversation Conversation
	History      []Message
	Pending      []Message
	IsNew        bool
}

// --- UseCase Inputs ---

type PersistTurnInput struct {
	Sender    Sender
	Content   string
	ToolCalls json.RawMessage
}

type ListConversationsInput struct {
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type HistoryOutput struct {
	Conversation Conversation
	Messages     []Message
}

type ListConversationsOutput struct {
	Conversations []Conversation
	Limit         int
	Offset        int
}

// Summary is a heuristic digest of a conversation.
type Summary struct {
	ConversationID        string
	MessageCount          int
	UserMessageCount      int
	AssistantMessageCount int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Topics                []string
	KeyPhrases            []string
	ConversationTone      string
	UserIntentSummary     string
}

type RelevantMessage struct {
	ID             string
	Sender         Sender
	Content        string
	CreatedAt      time.Time
	RelevanceScore float64
}

type RelevantOutput struct {
	ConversationID       string
	TotalMessages        int
	SelectedMessageCount int
	Messages             []RelevantMessage
}
