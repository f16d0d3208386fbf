package fairplay

import (
	"context"
	"time"

	"condo-parking/internal/domain/unit"

	"github.com/google/uuid"
)

// UnitSnapshot is the slice of unit state the rules need. Rules never mutate
// units; the read side owns the mapping from storage rows.
type UnitSnapshot struct {
	ID                      uuid.UUID
	Status                  unit.Status
	WeeklyQuotaHours        int32
	CurrentWeekUsageMinutes int32
}

type UnitReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitSnapshot, error)
}

// BookingHistoryReader resolves the end time of the unit's most recent
// booking by end_time, across all statuses. Implementations return an
// infra.KindNotFound error when the unit has no bookings.
type BookingHistoryReader interface {
	LastBookingEnd(ctx context.Context, unitID uuid.UUID) (time.Time, error)
}
