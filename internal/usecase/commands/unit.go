package commands

import (
	"context"

	"condo-parking/internal/domain/unit"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/errs"
	"condo-parking/internal/usecase/fairplay"

	"github.com/google/uuid"
)

var (
	ErrUnitNotFound      = errs.New("unit not found")
	ErrDuplicateUnit     = errs.New("unit number already exists")
	ErrInvalidUnitStatus = errs.New("invalid unit status")
)

type CreateUnitParams struct {
	Number           string
	WeeklyQuotaHours *int32
}

type UnitRepository interface {
	Create(ctx context.Context, u *unit.Unit) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status unit.Status) error
}

type UnitCommands interface {
	CreateUnit(ctx context.Context, params CreateUnitParams) (uuid.UUID, error)
	ChangeUnitStatus(ctx context.Context, id uuid.UUID, status string) error
}

type unitCommandsImpl struct {
	units UnitRepository
	cfg   fairplay.Config
}

func NewUnitCommands(units UnitRepository, cfg fairplay.Config) UnitCommands {
	return &unitCommandsImpl{units: units, cfg: cfg}
}

func (c *unitCommandsImpl) CreateUnit(ctx context.Context, params CreateUnitParams) (uuid.UUID, error) {
	quota := c.cfg.DefaultWeeklyQuotaHours
	if params.WeeklyQuotaHours != nil {
		quota = *params.WeeklyQuotaHours
	}

	entity, err := unit.NewUnit(params.Number, quota)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.units.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateUnit
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *unitCommandsImpl) ChangeUnitStatus(ctx context.Context, id uuid.UUID, status string) error {
	entity, err := c.units.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnitNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.ChangeStatus(unit.Status(status)); err != nil {
		return errs.Mark(err, ErrInvalidUnitStatus)
	}

	if err := c.units.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
