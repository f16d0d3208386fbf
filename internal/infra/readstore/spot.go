package readstore

import (
	"context"

	"condo-parking/internal/pkg/pgconv"
	"condo-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpotReadStore struct {
	db *pgxpool.Pool
}

func NewSpotReadStore(db *pgxpool.Pool) *SpotReadStore {
	return &SpotReadStore{db: db}
}

// FindActive implements commands.SpotRepository.
func (r *SpotReadStore) FindActive(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT active FROM spots WHERE id = $1`

	var active bool
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&active)
	if err != nil {
		return false, classifyError("failed to read spot", err)
	}
	return active, nil
}

// ListActive implements queries.SpotReadStore.
func (r *SpotReadStore) ListActive(ctx context.Context) ([]*queries.SpotView, error) {
	const query = `
		SELECT id, code, floor, active
		FROM spots
		WHERE active
		ORDER BY floor, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classifyError("failed to list spots", err)
	}
	defer rows.Close()

	var spots []*queries.SpotView
	for rows.Next() {
		var (
			spotID pgtype.UUID
			code   string
			floor  int32
			active bool
		)
		if err := rows.Scan(&spotID, &code, &floor, &active); err != nil {
			return nil, classifyError("failed to scan spot row", err)
		}
		spots = append(spots, &queries.SpotView{
			ID:     pgconv.UUIDFromPgtype(spotID),
			Code:   code,
			Floor:  floor,
			Active: active,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("failed to iterate spot rows", err)
	}

	return spots, nil
}
