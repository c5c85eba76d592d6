package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type stubProcessor struct {
	replies map[string]string
	err     error
	seen    []string
}

func (s *stubProcessor) Process(_ context.Context, _ string, utterance string) (string, error) {
	s.seen = append(s.seen, utterance)
	if s.err != nil {
		return "", s.err
	}
	return s.replies[utterance], nil
}

func TestRun(t *testing.T) {
	p := &stubProcessor{replies: map[string]string{
		"hi":      "What would you like to learn?",
		"python":  "Great pick. I found a great course for you!\nhttps://www.coursera.org/learn/python-for-everybody",
		"ignored": "never",
	}}
	in := strings.NewReader("hi\n\n  python \nQuit!\nignored\n")
	var out bytes.Buffer

	if err := Run(context.Background(), in, &out, p, "c1", "Hello!"); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(p.seen) != 2 || p.seen[1] != "python" {
		t.Errorf("utterances: %v", p.seen)
	}
	got := out.String()
	for _, want := range []string{
		"Counselor: Hello!",
		"Counselor: What would you like to learn?",
		"Counselor: Great pick. I found a great course for you!\n",
		"COURSE LINK: https://www.coursera.org/learn/python-for-everybody",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunProcessErrorContinues(t *testing.T) {
	p := &stubProcessor{err: errors.New("redis down")}
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader("hi\nhello\n"), &out, p, "c1", "Hello!"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(p.seen) != 2 {
		t.Errorf("turns after error: got %d, want 2", len(p.seen))
	}
	if !strings.Contains(out.String(), "something went wrong") {
		t.Error("missing error notice")
	}
}

func TestIsExit(t *testing.T) {
	tests := map[string]bool{
		"exit":              true,
		"QUIT":              true,
		"quit.":             true,
		"I want to quit":    false,
		"exit strategy tip": false,
	}
	for in, want := range tests {
		if got := isExit(in); got != want {
			t.Errorf("isExit(%q) = %v, want %v", in, got, want)
		}
	}
}
