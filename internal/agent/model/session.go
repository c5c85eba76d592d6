package model

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
)

// Session is the state owned by one conversation: the profile slots and the
// message history sent to the model. History[0] is always the system
// directive and is the only element ever rewritten.
type Session struct {
	ConversationID string            `json:"conversation_id"`
	Slots          SlotSet           `json:"slots"`
	History        []*schema.Message `json:"history"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// NewSession creates a session whose history holds only an empty directive.
func NewSession(conversationID string) *Session {
	return &Session{
		ConversationID: conversationID,
		History:        []*schema.Message{schema.SystemMessage("")},
		UpdatedAt:      time.Now().UTC(),
	}
}

// ReplaceDirective overwrites the content of history[0].
func (s *Session) ReplaceDirective(content string) {
	if len(s.History) == 0 || s.History[0] == nil || s.History[0].Role != schema.System {
		s.History = append([]*schema.Message{schema.SystemMessage(content)}, s.History...)
		return
	}
	s.History[0].Content = content
}

// Directive returns the current content of history[0].
func (s *Session) Directive() string {
	if len(s.History) == 0 || s.History[0] == nil {
		return ""
	}
	return s.History[0].Content
}

func (s *Session) AppendUser(content string) {
	s.History = append(s.History, schema.UserMessage(content))
}

func (s *Session) AppendAssistant(content string) {
	s.History = append(s.History, schema.AssistantMessage(content, nil))
}

func (s *Session) AppendSystem(content string) {
	s.History = append(s.History, schema.SystemMessage(content))
}

// Len is the total number of messages, directive included.
func (s *Session) Len() int {
	return len(s.History)
}

type SessionRepository interface {
	// Load returns the stored session or errx.ErrSessionNotFound.
	Load(ctx context.Context, conversationID string) (*Session, error)

	// Save persists the session, refreshing its TTL where supported.
	Save(ctx context.Context, session *Session) error

	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, conversationID string) error
}
