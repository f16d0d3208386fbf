package fairplay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Request is one candidate booking as seen by the rules.
type Request struct {
	UnitID uuid.UUID
	Start  time.Time
	End    time.Time
}

func (r Request) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionDenied
	// DecisionIndeterminate means the rule could not complete its storage
	// read. The validator treats it as a denial (fail-closed) but keeps the
	// cause around for logging.
	DecisionIndeterminate
)

type Outcome struct {
	Decision Decision
	Reason   string
	Cause    error
}

func Allowed() Outcome {
	return Outcome{Decision: DecisionAllowed}
}

func Denied(reason string) Outcome {
	return Outcome{Decision: DecisionDenied, Reason: reason}
}

func Indeterminate(reason string, cause error) Outcome {
	return Outcome{Decision: DecisionIndeterminate, Reason: reason, Cause: cause}
}

// Rule is one fair-play check. Rules never return an error across this
// boundary; uncertainty is expressed as an indeterminate outcome.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, req Request) Outcome
}

// formatDuration renders thresholds for user-facing reasons ("15m", "4h")
// without the trailing zero components of time.Duration.String.
func formatDuration(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	return fmt.Sprintf("%dm", int(d/time.Minute))
}
