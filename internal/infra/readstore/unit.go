package readstore

import (
	"context"

	"condo-parking/internal/domain/unit"
	"condo-parking/internal/pkg/pgconv"
	"condo-parking/internal/usecase/fairplay"
	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnitReadStore serves both the fair-play rules (snapshot) and the query
// layer (view) from the units table.
type UnitReadStore struct {
	db *pgxpool.Pool
}

func NewUnitReadStore(db *pgxpool.Pool) *UnitReadStore {
	return &UnitReadStore{db: db}
}

// FindByID implements fairplay.UnitReader.
func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*fairplay.UnitSnapshot, error) {
	const query = `
		SELECT id, status, weekly_quota_hours, current_week_usage_minutes
		FROM units
		WHERE id = $1`

	var (
		unitID       pgtype.UUID
		status       string
		quotaHours   int32
		usageMinutes int32
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&unitID, &status, &quotaHours, &usageMinutes,
	)
	if err != nil {
		return nil, classifyError("failed to read unit snapshot", err)
	}

	return &fairplay.UnitSnapshot{
		ID:                      pgconv.UUIDFromPgtype(unitID),
		Status:                  unit.Status(status),
		WeeklyQuotaHours:        quotaHours,
		CurrentWeekUsageMinutes: usageMinutes,
	}, nil
}

// FindViewByID implements queries.UnitReadStore.
func (r *UnitReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	const query = `
		SELECT id, number, status, weekly_quota_hours, current_week_usage_minutes,
		       last_booking_end, created_at, updated_at
		FROM units
		WHERE id = $1`

	var (
		unitID               pgtype.UUID
		number               string
		status               string
		quotaHours           int32
		usageMinutes         int32
		lastBookingEnd       pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&unitID, &number, &status, &quotaHours, &usageMinutes,
		&lastBookingEnd, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, classifyError("failed to read unit view", err)
	}

	remaining := quotaHours*60 - usageMinutes
	if remaining < 0 {
		remaining = 0
	}

	return &queries.UnitView{
		ID:                      pgconv.UUIDFromPgtype(unitID),
		Number:                  number,
		Status:                  status,
		WeeklyQuotaHours:        quotaHours,
		CurrentWeekUsageMinutes: usageMinutes,
		RemainingQuotaMinutes:   remaining,
		LastBookingEnd:          pgconv.TimePtrFromPgtype(lastBookingEnd),
		CreatedAt:               pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:               pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
