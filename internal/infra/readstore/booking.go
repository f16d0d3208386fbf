package readstore

import (
	"context"
	"time"

	"condo-parking/internal/pkg/pgconv"
	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// LastBookingEnd implements fairplay.BookingHistoryReader. The query has no
// status filter: cancelled and reported bookings anchor the cooldown window
// the same as completed ones.
func (r *BookingReadStore) LastBookingEnd(ctx context.Context, unitID uuid.UUID) (time.Time, error) {
	const query = `
		SELECT end_time
		FROM bookings
		WHERE unit_id = $1
		ORDER BY end_time DESC
		LIMIT 1`

	var endTime pgtype.Timestamptz
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(unitID)).Scan(&endTime)
	if err != nil {
		return time.Time{}, classifyError("failed to read last booking end", err)
	}

	return pgconv.TimeFromPgtype(endTime), nil
}

// FindByID implements queries.BookingReadStore.
func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.unit_id, u.number, b.spot_id, s.code,
		       b.start_time, b.end_time, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN units u ON u.id = b.unit_id
		JOIN spots s ON s.id = b.spot_id
		WHERE b.id = $1`

	var (
		bookingID, unitID, spotID pgtype.UUID
		unitNumber, spotCode      string
		startTime, endTime        pgtype.Timestamptz
		status                    string
		createdAt, updatedAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &unitID, &unitNumber, &spotID, &spotCode,
		&startTime, &endTime, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, classifyError("failed to read booking view", err)
	}

	return &queries.BookingView{
		ID:         pgconv.UUIDFromPgtype(bookingID),
		UnitID:     pgconv.UUIDFromPgtype(unitID),
		UnitNumber: unitNumber,
		SpotID:     pgconv.UUIDFromPgtype(spotID),
		SpotCode:   spotCode,
		StartTime:  pgconv.TimeFromPgtype(startTime),
		EndTime:    pgconv.TimeFromPgtype(endTime),
		Status:     status,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:  pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// FindByUnitID implements queries.BookingReadStore, newest first.
func (r *BookingReadStore) FindByUnitID(ctx context.Context, unitID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.spot_id, s.code, b.start_time, b.end_time, b.status, b.created_at
		FROM bookings b
		JOIN spots s ON s.id = b.spot_id
		WHERE b.unit_id = $1
		ORDER BY b.start_time DESC`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(unitID))
	if err != nil {
		return nil, classifyError("failed to list unit bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			bookingID, spotID    pgtype.UUID
			spotCode             string
			startTime, endTime   pgtype.Timestamptz
			status               string
			createdAt            pgtype.Timestamptz
		)
		if err := rows.Scan(&bookingID, &spotID, &spotCode, &startTime, &endTime, &status, &createdAt); err != nil {
			return nil, classifyError("failed to scan booking row", err)
		}
		items = append(items, &queries.BookingListItem{
			ID:        pgconv.UUIDFromPgtype(bookingID),
			SpotID:    pgconv.UUIDFromPgtype(spotID),
			SpotCode:  spotCode,
			StartTime: pgconv.TimeFromPgtype(startTime),
			EndTime:   pgconv.TimeFromPgtype(endTime),
			Status:    status,
			CreatedAt: pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("failed to iterate booking rows", err)
	}

	return items, nil
}
