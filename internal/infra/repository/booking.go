package repository

import (
	"context"

	"condo-parking/internal/domain/booking"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking inside the caller's transaction. time_slot is
// the tstzrange column carrying the gist exclusion constraint on
// (spot_id, time_slot) for non-cancelled rows; a violation surfaces as
// KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, unit_id, spot_id, start_time, end_time, time_slot, status)
		VALUES ($1, $2, $3, $4, $5, $6::tstzrange, $7)
		RETURNING id`

	slot := b.TimeSlot()
	var id pgtype.UUID
	err := tx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.UnitID()),
		pgconv.UUIDToPgtype(b.SpotID()),
		pgconv.TimeToPgtype(slot.Start()),
		pgconv.TimeToPgtype(slot.End()),
		slot.ToTstzrange(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyError("failed to create booking", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, unit_id, spot_id, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, unitID, spotID pgtype.UUID
		startTime, endTime        pgtype.Timestamptz
		status                    string
		createdAt, updatedAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &unitID, &spotID, &startTime, &endTime, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, classifyError("failed to find booking", err)
	}

	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid time slot", err)
	}

	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(bookingID),
		pgconv.UUIDFromPgtype(unitID),
		pgconv.UUIDFromPgtype(spotID),
		slot,
		booking.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return classifyError("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
