package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/career-counselor/server/internal/agent/model"
	errx "github.com/career-counselor/server/internal/core/error"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process, encoded the same way as
// the Redis repository so callers never share mutable state with it.
type MemorySessionRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (r *MemorySessionRepository) Load(_ context.Context, conversationID string) (*model.Session, error) {
	r.mu.Lock()
	e, ok := r.entries[conversationID]
	if ok && r.expired(e) {
		delete(r.entries, conversationID)
		ok = false
	}
	r.mu.Unlock()
	if !ok {
		return nil, errx.ErrSessionNotFound
	}

	var s model.Session
	if err := json.Unmarshal(e.data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *MemorySessionRepository) Save(_ context.Context, session *model.Session) error {
	if session == nil || session.ConversationID == "" {
		return errx.BadRequest(errors.New("session without conversation id"))
	}
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	e := entry{data: b}
	if r.ttl > 0 {
		e.expiresAt = r.now().Add(r.ttl)
	}

	r.mu.Lock()
	r.entries[session.ConversationID] = e
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, conversationID string) error {
	r.mu.Lock()
	delete(r.entries, conversationID)
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepository) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)
}

var _ model.SessionRepository = (*MemorySessionRepository)(nil)
