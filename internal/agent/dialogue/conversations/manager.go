package conversations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/career-counselor/server/internal/agent/model"
	errx "github.com/career-counselor/server/internal/core/error"
	logx "github.com/career-counselor/server/pkg/logger"
)

// Processor runs one dialogue turn against a session.
type Processor interface {
	Process(ctx context.Context, s *model.Session, utterance string) string
}

// Manager owns session lifecycle around the counselor: load or create,
// run one turn, save. Turns for the same conversation never overlap.
type Manager struct {
	sessionRepo model.SessionRepository
	processor   Processor
	locks       *keyedMutex
}

func NewManager(sessionRepo model.SessionRepository, processor Processor) *Manager {
	return &Manager{
		sessionRepo: sessionRepo,
		processor:   processor,
		locks:       newKeyedMutex(),
	}
}

// Start creates and stores an empty session.
func (m *Manager) Start(ctx context.Context, conversationID string) (*model.Session, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, errx.BadRequest(errors.New("empty conversation id"))
	}
	unlock := m.locks.lock(conversationID)
	defer unlock()

	s := model.NewSession(conversationID)
	if err := m.sessionRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Process runs one turn and returns the reply. A missing session is created.
// Repository failures are returned as errors; dialogue failures never are.
func (m *Manager) Process(ctx context.Context, conversationID, utterance string) (string, error) {
	// TODO: Add input length validation for utterance before it reaches the model
	if strings.TrimSpace(conversationID) == "" {
		return "", errx.BadRequest(errors.New("empty conversation id"))
	}

	unlock := m.locks.lock(conversationID)
	defer unlock()

	s, err := m.sessionRepo.Load(ctx, conversationID)
	if errors.Is(err, errx.ErrSessionNotFound) {
		logx.Debug().Str("conversation_id", conversationID).Msg("starting new session")
		s = model.NewSession(conversationID)
	} else if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	reply := m.processor.Process(ctx, s, utterance)

	if err := m.sessionRepo.Save(ctx, s); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return reply, nil
}

// Session returns a stored session for inspection.
func (m *Manager) Session(ctx context.Context, conversationID string) (*model.Session, error) {
	return m.sessionRepo.Load(ctx, conversationID)
}

// Reset forgets a conversation.
func (m *Manager) Reset(ctx context.Context, conversationID string) error {
	unlock := m.locks.lock(conversationID)
	defer unlock()
	return m.sessionRepo.Delete(ctx, conversationID)
}

// keyedMutex hands out one mutex per key and frees it when unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refMutex{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
