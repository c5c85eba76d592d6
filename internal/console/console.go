package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/career-counselor/server/internal/agent/presenter"
	logx "github.com/career-counselor/server/pkg/logger"
)

// Processor runs one turn for a conversation.
type Processor interface {
	Process(ctx context.Context, conversationID, utterance string) (string, error)
}

// Run reads one utterance per line from in until EOF, "exit" or "quit", and
// writes the counselor's replies to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, p Processor, conversationID, greeting string) error {
	fmt.Fprintf(out, "Counselor: %s\n", greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if isExit(text) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		reply, err := p.Process(ctx, conversationID, text)
		if err != nil {
			logx.Error().Err(err).Str("conversation_id", conversationID).Msg("turn failed")
			fmt.Fprintln(out, "Counselor: Sorry, something went wrong. Please try again.")
			continue
		}

		pres := presenter.Present(reply)
		fmt.Fprintf(out, "Counselor: %s\n", pres.Text)
		if pres.CourseURL != "" {
			fmt.Fprintf(out, "\nCOURSE LINK: %s\n", pres.CourseURL)
		}
	}
	return scanner.Err()
}

func isExit(text string) bool {
	switch strings.ToLower(strings.Trim(text, " .!")) {
	case "exit", "quit":
		return true
	}
	return false
}
