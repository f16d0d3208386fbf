package fairplay

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Verdict is the validator's answer to one booking request. Reason is empty
// when the booking is admitted and names the violated constraint (with its
// threshold) when it is not.
type Verdict struct {
	Allowed bool
	Reason  string
}

// Validator runs the fair-play rules in a fixed order and stops at the first
// rule that does not allow the request: cheap local checks first, then
// standing before capacity. It holds no state between calls and never
// reserves anything; write-path atomicity belongs to the booking commit.
type Validator struct {
	rules  []Rule
	logger *slog.Logger
}

func NewValidator(cfg Config, units UnitReader, history BookingHistoryReader, logger *slog.Logger) *Validator {
	return &Validator{
		rules: []Rule{
			NewDurationRule(cfg),
			NewDelinquencyRule(units),
			NewQuotaRule(units, cfg),
			NewCooldownRule(history, cfg),
		},
		logger: logger,
	}
}

// NewValidatorWithRules builds a validator over an explicit rule chain.
// Order matters: rules are evaluated front to back.
func NewValidatorWithRules(logger *slog.Logger, rules ...Rule) *Validator {
	return &Validator{rules: rules, logger: logger}
}

func (v *Validator) Validate(ctx context.Context, unitID uuid.UUID, start, end time.Time) Verdict {
	req := Request{UnitID: unitID, Start: start, End: end}

	for _, rule := range v.rules {
		outcome := rule.Evaluate(ctx, req)
		switch outcome.Decision {
		case DecisionAllowed:
			continue
		case DecisionIndeterminate:
			// Fail closed: ambiguity about a unit's standing never admits a
			// booking. The cause is only visible in logs.
			v.logger.Error("fair-play check did not complete, denying booking",
				"rule", rule.Name(),
				"unit_id", unitID,
				"error", outcome.Cause,
			)
			return Verdict{Allowed: false, Reason: outcome.Reason}
		default:
			return Verdict{Allowed: false, Reason: outcome.Reason}
		}
	}

	return Verdict{Allowed: true}
}
