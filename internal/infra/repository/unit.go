package repository

import (
	"context"
	"time"

	"condo-parking/internal/domain/unit"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnitRepository struct {
	db *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) (uuid.UUID, error) {
	const query = `
		INSERT INTO units (id, number, status, weekly_quota_hours, current_week_usage_minutes, last_booking_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Number(),
		u.Status().String(),
		u.WeeklyQuotaHours(),
		u.CurrentWeekUsageMinutes(),
		pgconv.TimePtrToPgtype(u.LastBookingEnd()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyError("failed to create unit", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
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
		return nil, classifyError("failed to find unit", err)
	}

	return unit.ReconstructUnit(
		pgconv.UUIDFromPgtype(unitID),
		number,
		unit.Status(status),
		quotaHours,
		usageMinutes,
		pgconv.TimePtrFromPgtype(lastBookingEnd),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *UnitRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status unit.Status) error {
	const query = `UPDATE units SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return classifyError("failed to update unit status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
	}
	return nil
}

// ApplyBookingUsage charges a committed booking against the unit's weekly
// tally and records when that booking ends. Runs inside the booking commit
// transaction.
func (r *UnitRepository) ApplyBookingUsage(ctx context.Context, tx pgx.Tx, unitID uuid.UUID, addedMinutes int32, lastBookingEnd time.Time) error {
	const query = `
		UPDATE units
		SET current_week_usage_minutes = current_week_usage_minutes + $2,
		    last_booking_end = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(unitID),
		addedMinutes,
		pgconv.TimeToPgtype(lastBookingEnd),
	)
	if err != nil {
		return classifyError("failed to apply booking usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
	}
	return nil
}

// ResetWeeklyUsage zeroes every unit's weekly tally. Called by the reset
// worker at the start of each quota week.
func (r *UnitRepository) ResetWeeklyUsage(ctx context.Context) (int64, error) {
	const query = `
		UPDATE units
		SET current_week_usage_minutes = 0, updated_at = now()
		WHERE current_week_usage_minutes > 0`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, classifyError("failed to reset weekly usage", err)
	}
	return tag.RowsAffected(), nil
}
