package commands

import (
	"context"

	"condo-parking/internal/domain/spot"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDuplicateSpot = errs.New("spot code already exists")

type CreateSpotParams struct {
	Code  string
	Floor int32
}

type SpotWriteRepository interface {
	Create(ctx context.Context, s *spot.Spot) (uuid.UUID, error)
}

type SpotCommands interface {
	CreateSpot(ctx context.Context, params CreateSpotParams) (uuid.UUID, error)
}

type spotCommandsImpl struct {
	spots SpotWriteRepository
}

func NewSpotCommands(spots SpotWriteRepository) SpotCommands {
	return &spotCommandsImpl{spots: spots}
}

func (c *spotCommandsImpl) CreateSpot(ctx context.Context, params CreateSpotParams) (uuid.UUID, error) {
	entity, err := spot.NewSpot(params.Code, params.Floor)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.spots.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateSpot
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
