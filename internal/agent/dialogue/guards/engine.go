package guards

import (
	"github.com/career-counselor/server/internal/agent/model"
)

// Verdict is the engine's decision on one classified response.
type Verdict struct {
	Accepted   bool
	Response   model.Classified // normalized on accept
	Guard      string           // rejecting guard, empty on accept
	Correction string
}

// Engine runs the guards applicable to a response kind, in table order.
type Engine struct {
	guards []Guard
}

// NewEngine builds an engine over the given table.
func NewEngine(guards []Guard) *Engine {
	return &Engine{guards: guards}
}

// Guards exposes the table, mainly for diagnostics.
func (e *Engine) Guards() []Guard {
	return e.guards
}

// Evaluate stops at the first rejection. Normalizing guards pass their
// rewritten text to the next guard of the same kind.
func (e *Engine) Evaluate(in Input) Verdict {
	for _, g := range e.guards {
		if g.Kind != in.Response.Kind {
			continue
		}
		res := g.Check(in)
		if res.Reject {
			return Verdict{
				Response:   in.Response,
				Guard:      g.Name,
				Correction: res.Correction,
			}
		}
		in.Response.Text = res.Text
	}
	return Verdict{Accepted: true, Response: in.Response}
}
