package queries

import (
	"context"

	"condo-parking/internal/pkg/errs"
)

type SpotReadStore interface {
	ListActive(ctx context.Context) ([]*SpotView, error)
}

type SpotQueries interface {
	ListActive(ctx context.Context) ([]*SpotView, error)
}

type spotQueriesImpl struct {
	store SpotReadStore
}

func NewSpotQueries(store SpotReadStore) SpotQueries {
	return &spotQueriesImpl{store: store}
}

func (q *spotQueriesImpl) ListActive(ctx context.Context) ([]*SpotView, error) {
	spots, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list spots")
	}
	return spots, nil
}
