package queries

import (
	"context"

	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnitNotFound = errs.New("unit not found")

type UnitReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
}

type UnitQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
}

type unitQueriesImpl struct {
	store UnitReadStore
}

func NewUnitQueries(store UnitReadStore) UnitQueries {
	return &unitQueriesImpl{store: store}
}

func (q *unitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, errs.Wrap(err, "failed to find unit")
	}
	return view, nil
}
