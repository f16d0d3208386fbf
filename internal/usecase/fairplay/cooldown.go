package fairplay

import (
	"context"
	"fmt"
	"time"

	"condo-parking/internal/infra"
)

// CooldownRule enforces a minimum gap between the end of the unit's most
// recent booking and the start of the next one. The most recent booking is
// picked by end_time regardless of status, so a cancelled booking still
// starts the clock. A unit with no booking history passes unconditionally,
// and the boundary is inclusive: starting exactly when the cooldown elapses
// is allowed.
type CooldownRule struct {
	history  BookingHistoryReader
	cooldown time.Duration
	reason   string
}

func NewCooldownRule(history BookingHistoryReader, cfg Config) *CooldownRule {
	return &CooldownRule{
		history:  history,
		cooldown: cfg.Cooldown,
		reason:   fmt.Sprintf("Cooldown period of %d hours not respected.", int(cfg.Cooldown/time.Hour)),
	}
}

func (r *CooldownRule) Name() string {
	return "cooldown"
}

func (r *CooldownRule) Evaluate(ctx context.Context, req Request) Outcome {
	lastEnd, err := r.history.LastBookingEnd(ctx, req.UnitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Allowed()
		}
		return Indeterminate(r.reason, err)
	}

	if req.Start.Before(lastEnd.Add(r.cooldown)) {
		return Denied(r.reason)
	}
	return Allowed()
}
