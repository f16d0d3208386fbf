package fairplay

import (
	"context"
	"fmt"
	"time"

	"condo-parking/internal/infra"
)

const quotaReasonFormat = "Weekly quota of %d hours exceeded."

// QuotaRule checks that the unit's accumulated weekly usage plus the proposed
// slot stays within its quota. The boundary is inclusive: landing exactly on
// the quota passes. Arithmetic is done in time.Duration to avoid float
// hours.
type QuotaRule struct {
	units             UnitReader
	defaultQuotaHours int32
}

func NewQuotaRule(units UnitReader, cfg Config) *QuotaRule {
	return &QuotaRule{
		units:             units,
		defaultQuotaHours: cfg.DefaultWeeklyQuotaHours,
	}
}

func (r *QuotaRule) Name() string {
	return "quota"
}

func (r *QuotaRule) Evaluate(ctx context.Context, req Request) Outcome {
	u, err := r.units.FindByID(ctx, req.UnitID)
	if err != nil {
		// The unit's own quota is unknown here, so the reason falls back to
		// the condominium-wide default.
		reason := fmt.Sprintf(quotaReasonFormat, r.defaultQuotaHours)
		if infra.IsKind(err, infra.KindNotFound) {
			return Denied(reason)
		}
		return Indeterminate(reason, err)
	}

	used := time.Duration(u.CurrentWeekUsageMinutes) * time.Minute
	limit := time.Duration(u.WeeklyQuotaHours) * time.Hour
	if used+req.Duration() > limit {
		return Denied(fmt.Sprintf(quotaReasonFormat, u.WeeklyQuotaHours))
	}
	return Allowed()
}
