package fairplay

import (
	"context"
	"fmt"
)

// DurationRule checks the slot length alone: bounded below and above, and
// aligned to the booking increment. Zero, negative and sub-minute slots all
// fall out of these checks. No I/O.
type DurationRule struct {
	cfg    Config
	reason string
}

func NewDurationRule(cfg Config) *DurationRule {
	return &DurationRule{
		cfg: cfg,
		reason: fmt.Sprintf(
			"Booking duration is invalid (min %s, max %s, %s intervals).",
			formatDuration(cfg.MinDuration),
			formatDuration(cfg.MaxDuration),
			formatDuration(cfg.SlotIncrement),
		),
	}
}

func (r *DurationRule) Name() string {
	return "duration"
}

func (r *DurationRule) Evaluate(_ context.Context, req Request) Outcome {
	d := req.Duration()
	if d < r.cfg.MinDuration || d > r.cfg.MaxDuration {
		return Denied(r.reason)
	}
	if d%r.cfg.SlotIncrement != 0 {
		return Denied(r.reason)
	}
	return Allowed()
}
