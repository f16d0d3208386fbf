package fairplay

import (
	"context"

	"condo-parking/internal/domain/unit"
	"condo-parking/internal/infra"
)

const delinquencyReason = "Unit is delinquent and cannot make bookings."

// DelinquencyRule admits only units that exist and are in good standing.
// An unknown unit or a failed read denies the booking.
type DelinquencyRule struct {
	units UnitReader
}

func NewDelinquencyRule(units UnitReader) *DelinquencyRule {
	return &DelinquencyRule{units: units}
}

func (r *DelinquencyRule) Name() string {
	return "delinquency"
}

func (r *DelinquencyRule) Evaluate(ctx context.Context, req Request) Outcome {
	u, err := r.units.FindByID(ctx, req.UnitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return Denied(delinquencyReason)
		}
		return Indeterminate(delinquencyReason, err)
	}

	if u.Status == unit.StatusDelinquent {
		return Denied(delinquencyReason)
	}
	return Allowed()
}
