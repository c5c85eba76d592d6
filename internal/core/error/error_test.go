package errx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestStatusAndMessage(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"plain error", boom, http.StatusInternalServerError, SystemErrorMessage},
		{"session not found", fmt.Errorf("load: %w", ErrSessionNotFound), http.StatusNotFound, SessionNotFoundMessage},
		{"bad request", BadRequest(boom), http.StatusBadRequest, BadRequestMessage},
		{"redis nil", WrapRedis(redis.Nil), http.StatusNotFound, RedisNotFoundMessage},
		{"redis failure", fmt.Errorf("save: %w", WrapRedis(boom)), http.StatusBadGateway, RedisErrorMessage},
		{"redis timeout", WrapRedis(context.DeadlineExceeded), http.StatusGatewayTimeout, RedisTimeoutMessage},
		{"inference", WrapInference(boom), http.StatusServiceUnavailable, InferenceErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.wantStatus {
				t.Errorf("status: got %d, want %d", got, tt.wantStatus)
			}
			if got := MessageOf(tt.err); got != tt.wantMsg {
				t.Errorf("message: got %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if WrapRedis(nil) != nil || WrapInference(nil) != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	boom := errors.New("boom")
	err := New(boom, http.StatusTeapot, "teapot")
	if !errors.Is(err, boom) {
		t.Error("AppError must unwrap to its cause")
	}
	if err.Error() != "teapot: boom" {
		t.Errorf("error text: %q", err.Error())
	}
	if New(nil, 500, "bare").Error() != "bare" {
		t.Error("nil cause should print the message only")
	}
}
