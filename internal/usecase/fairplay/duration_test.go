//go:build unit

package fairplay_test

import (
	"context"
	"testing"
	"time"

	"condo-parking/internal/usecase/fairplay"

	"github.com/stretchr/testify/assert"
)

func TestDurationRule(t *testing.T) {
	rule := fairplay.NewDurationRule(fairplay.DefaultConfig())
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		allowed  bool
	}{
		{name: "exactly minimum 15m", duration: 15 * time.Minute, allowed: true},
		{name: "below minimum 14m", duration: 14 * time.Minute, allowed: false},
		{name: "exactly maximum 240m", duration: 240 * time.Minute, allowed: true},
		{name: "above maximum 241m", duration: 241 * time.Minute, allowed: false},
		{name: "non multiple of 15m", duration: 20 * time.Minute, allowed: false},
		{name: "one hour", duration: time.Hour, allowed: true},
		{name: "zero duration", duration: 0, allowed: false},
		{name: "negative duration", duration: -30 * time.Minute, allowed: false},
		{name: "sub-minute remainder", duration: 15*time.Minute + 30*time.Second, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fairplay.Request{Start: start, End: start.Add(tt.duration)}
			outcome := rule.Evaluate(context.Background(), req)

			if tt.allowed {
				assert.Equal(t, fairplay.DecisionAllowed, outcome.Decision)
				assert.Empty(t, outcome.Reason)
			} else {
				assert.Equal(t, fairplay.DecisionDenied, outcome.Decision)
				assert.Equal(t, "Booking duration is invalid (min 15m, max 4h, 15m intervals).", outcome.Reason)
			}
		})
	}
}

func TestDurationRuleNeverIndeterminate(t *testing.T) {
	rule := fairplay.NewDurationRule(fairplay.DefaultConfig())
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

	// An inverted interval is a caller mistake, not a storage problem; it
	// must come back as a plain denial.
	req := fairplay.Request{Start: start, End: start.Add(-time.Hour)}
	outcome := rule.Evaluate(context.Background(), req)

	assert.Equal(t, fairplay.DecisionDenied, outcome.Decision)
	assert.NoError(t, outcome.Cause)
}
