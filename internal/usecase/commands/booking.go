package commands

import (
	"context"
	"log/slog"
	"time"

	"condo-parking/internal/domain/booking"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/clock"
	"condo-parking/internal/pkg/errs"
	"condo-parking/internal/usecase/fairplay"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSpotNotFound            = errs.New("spot not found")
	ErrSpotUnavailable         = errs.New("spot is not active")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrPastStartTime           = errs.New("booking starts in the past")
	ErrSpotConflict            = errs.New("spot already booked for this interval")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// PolicyViolationError carries the fair-play denial reason to the handler
// layer, where it becomes the user-facing message.
type PolicyViolationError struct {
	Reason string
}

func (e *PolicyViolationError) Error() string {
	return "booking rejected: " + e.Reason
}

type CreateBookingParams struct {
	UnitID uuid.UUID
	SpotID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type UnitWriteRepository interface {
	ApplyBookingUsage(ctx context.Context, tx pgx.Tx, unitID uuid.UUID, addedMinutes int32, lastBookingEnd time.Time) error
}

type SpotRepository interface {
	FindActive(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookingValidator is the fair-play admission gate. Satisfied by
// *fairplay.Validator.
type BookingValidator interface {
	Validate(ctx context.Context, unitID uuid.UUID, start, end time.Time) fairplay.Verdict
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings  BookingRepository
	units     UnitWriteRepository
	spots     SpotRepository
	validator BookingValidator
	db        *pgxpool.Pool
	clock     clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	units UnitWriteRepository,
	spots SpotRepository,
	validator BookingValidator,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		units:     units,
		spots:     spots,
		validator: validator,
		db:        db,
		clock:     clock,
	}
}

// CreateBooking rejects slots that start in the past, admits the request
// through the fair-play validator, then
// commits the booking and the unit's usage bump in one transaction. The
// validator only decides admission; the unique spot/interval constraint in
// storage is what makes concurrent winners exclusive.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	if params.Start.Before(c.clock.Now()) {
		return uuid.Nil, ErrPastStartTime
	}

	verdict := c.validator.Validate(ctx, params.UnitID, params.Start, params.End)
	if !verdict.Allowed {
		return uuid.Nil, &PolicyViolationError{Reason: verdict.Reason}
	}

	active, err := c.spots.FindActive(ctx, params.SpotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrSpotNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !active {
		return uuid.Nil, ErrSpotUnavailable
	}

	slot, err := booking.NewTimeSlot(params.Start, params.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeSlot)
	}
	entity := booking.NewBooking(params.UnitID, params.SpotID, slot)

	return c.executeBookingTransaction(ctx, entity)
}

func (c *bookingCommandsImpl) executeBookingTransaction(ctx context.Context, entity *booking.Booking) (uuid.UUID, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	id, err := c.bookings.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrSpotConflict
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slot := entity.TimeSlot()
	if err := c.units.ApplyBookingUsage(ctx, tx, entity.UnitID(), slot.Minutes(), slot.End()); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return id, nil
}

// CancelBooking flips the booking to cancelled. Usage already charged to the
// unit stays, and the cancelled booking still anchors the cooldown window.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	entity, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Cancel(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookings.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
