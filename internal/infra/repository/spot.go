package repository

import (
	"context"

	"condo-parking/internal/domain/spot"
	"condo-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpotRepository struct {
	db *pgxpool.Pool
}

func NewSpotRepository(db *pgxpool.Pool) *SpotRepository {
	return &SpotRepository{db: db}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) (uuid.UUID, error) {
	const query = `
		INSERT INTO spots (id, code, floor, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(s.ID()),
		s.Code(),
		s.Floor(),
		s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyError("failed to create spot", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}
