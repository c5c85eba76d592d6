package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/career-counselor/server/internal/agent/model"
	"github.com/career-counselor/server/internal/agent/presenter"
	errx "github.com/career-counselor/server/internal/core/error"
	logx "github.com/career-counselor/server/pkg/logger"
)

// maxRequestBodySize bounds message payloads.
const maxRequestBodySize = 64 << 10

// Conversations is the session lifecycle the handlers drive.
type Conversations interface {
	Start(ctx context.Context, conversationID string) (*model.Session, error)
	Process(ctx context.Context, conversationID, utterance string) (string, error)
	Session(ctx context.Context, conversationID string) (*model.Session, error)
	Reset(ctx context.Context, conversationID string) error
}

// Courses exposes the catalog.
type Courses interface {
	All() []model.Course
	Lookup(id string) (model.Course, bool)
}

type Handler struct {
	conversations Conversations
	courses       Courses
	greeting      string
	newID         func() string
}

func NewHandler(conversations Conversations, courses Courses, greeting string) *Handler {
	return &Handler{
		conversations: conversations,
		courses:       courses,
		greeting:      greeting,
		newID:         uuid.NewString,
	}
}

type startResponse struct {
	ConversationID string `json:"conversation_id"`
	Greeting       string `json:"greeting"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ConversationID string `json:"conversation_id"`
	presenter.Presentation
}

type sessionResponse struct {
	ConversationID string        `json:"conversation_id"`
	Profile        model.SlotSet `json:"profile"`
	Filled         int           `json:"filled"`
	Missing        []model.Slot  `json:"missing"`
	Turns          int           `json:"turns"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// StartConversation handles POST /conversations.
func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	id := h.newID()
	if _, err := h.conversations.Start(r.Context(), id); err != nil {
		h.fail(w, err, id)
		return
	}
	JSON(w, http.StatusCreated, startResponse{ConversationID: id, Greeting: h.greeting})
}

// PostMessage handles POST /conversations/{id}/messages.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req messageRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, errx.BadRequest(err), id)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		h.fail(w, errx.BadRequest(errors.New("empty text")), id)
		return
	}

	reply, err := h.conversations.Process(r.Context(), id, text)
	if err != nil {
		h.fail(w, err, id)
		return
	}
	JSON(w, http.StatusOK, messageResponse{
		ConversationID: id,
		Presentation:   presenter.Present(reply),
	})
}

// GetConversation handles GET /conversations/{id}: the collected profile and
// how far the conversation has gone.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, err := h.conversations.Session(r.Context(), id)
	if err != nil {
		h.fail(w, err, id)
		return
	}

	turns := 0
	for _, m := range s.History {
		if m.Role == schema.User {
			turns++
		}
	}
	missing := s.Slots.Missing()
	if missing == nil {
		missing = []model.Slot{}
	}
	JSON(w, http.StatusOK, sessionResponse{
		ConversationID: id,
		Profile:        s.Slots,
		Filled:         s.Slots.Filled(),
		Missing:        missing,
		Turns:          turns,
		UpdatedAt:      s.UpdatedAt,
	})
}

// DeleteConversation handles DELETE /conversations/{id}.
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.conversations.Reset(r.Context(), id); err != nil {
		h.fail(w, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCourses handles GET /courses.
func (h *Handler) ListCourses(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, h.courses.All())
}

// GetCourse handles GET /courses/{id}.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := h.courses.Lookup(chi.URLParam(r, "id"))
	if !ok {
		Error(w, http.StatusNotFound, "course not found")
		return
	}
	JSON(w, http.StatusOK, course)
}

func (h *Handler) fail(w http.ResponseWriter, err error, conversationID string) {
	status := errx.StatusOf(err)
	ev := logx.Warn()
	if status >= http.StatusInternalServerError {
		ev = logx.Error()
	}
	ev.Err(err).Str("conversation_id", conversationID).Int("status", status).Msg("request failed")
	Error(w, status, errx.MessageOf(err))
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
