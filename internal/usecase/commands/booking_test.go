//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"condo-parking/internal/domain/booking"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/clock"
	"condo-parking/internal/pkg/errs"
	"condo-parking/internal/usecase/commands"
	"condo-parking/internal/usecase/fairplay"
	commandsmock "condo-parking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingCommandMocks struct {
	bookings  *commandsmock.MockBookingRepository
	units     *commandsmock.MockUnitWriteRepository
	spots     *commandsmock.MockSpotRepository
	validator *commandsmock.MockBookingValidator
}

func newBookingCommands(t *testing.T) (commands.BookingCommands, bookingCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingCommandMocks{
		bookings:  commandsmock.NewMockBookingRepository(ctrl),
		units:     commandsmock.NewMockUnitWriteRepository(ctrl),
		spots:     commandsmock.NewMockSpotRepository(ctrl),
		validator: commandsmock.NewMockBookingValidator(ctrl),
	}
	// The pool is only touched once admission and spot checks pass; the
	// paths under test return before any transaction begins.
	cmd := commands.NewBookingCommands(m.bookings, m.units, m.spots, m.validator, nil, clock.NewMockClock(time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)))
	return cmd, m
}

func TestCreateBooking(t *testing.T) {
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	params := commands.CreateBookingParams{
		UnitID: uuid.New(),
		SpotID: uuid.New(),
		Start:  start,
		End:    start.Add(time.Hour),
	}

	t.Run("start in the past is rejected before any policy check", func(t *testing.T) {
		cmd, _ := newBookingCommands(t)
		past := params
		past.Start = time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC)
		past.End = past.Start.Add(time.Hour)

		// No expectations on the validator or spots: the clock check is first.
		_, err := cmd.CreateBooking(context.Background(), past)
		assert.ErrorIs(t, err, commands.ErrPastStartTime)
	})

	t.Run("fair-play denial surfaces as a policy violation", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		m.validator.EXPECT().Validate(gomock.Any(), params.UnitID, params.Start, params.End).
			Return(fairplay.Verdict{Allowed: false, Reason: "Weekly quota of 15 hours exceeded."})

		_, err := cmd.CreateBooking(context.Background(), params)

		var policyErr *commands.PolicyViolationError
		require.ErrorAs(t, err, &policyErr)
		assert.Equal(t, "Weekly quota of 15 hours exceeded.", policyErr.Reason)
	})

	t.Run("unknown spot", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		m.validator.EXPECT().Validate(gomock.Any(), params.UnitID, params.Start, params.End).
			Return(fairplay.Verdict{Allowed: true})
		m.spots.EXPECT().FindActive(gomock.Any(), params.SpotID).
			Return(false, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound))

		_, err := cmd.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrSpotNotFound)
	})

	t.Run("inactive spot", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		m.validator.EXPECT().Validate(gomock.Any(), params.UnitID, params.Start, params.End).
			Return(fairplay.Verdict{Allowed: true})
		m.spots.EXPECT().FindActive(gomock.Any(), params.SpotID).Return(false, nil)

		_, err := cmd.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrSpotUnavailable)
	})

	t.Run("spot lookup failure", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		m.validator.EXPECT().Validate(gomock.Any(), params.UnitID, params.Start, params.End).
			Return(fairplay.Verdict{Allowed: true})
		m.spots.EXPECT().FindActive(gomock.Any(), params.SpotID).
			Return(false, infra.WrapRepoErr("query failed", errs.New("connection reset")))

		_, err := cmd.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})

	t.Run("inverted time slot", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		inverted := params
		inverted.Start, inverted.End = params.End, params.Start

		m.validator.EXPECT().Validate(gomock.Any(), inverted.UnitID, inverted.Start, inverted.End).
			Return(fairplay.Verdict{Allowed: true})
		m.spots.EXPECT().FindActive(gomock.Any(), inverted.SpotID).Return(true, nil)

		_, err := cmd.CreateBooking(context.Background(), inverted)
		assert.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := uuid.New()
	base := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(base, base.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("confirmed booking is cancelled and persisted", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		entity := booking.ReconstructBooking(bookingID, uuid.New(), uuid.New(), slot, booking.StatusConfirmed, base, base)

		m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(entity, nil)
		m.bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)

		require.NoError(t, cmd.CancelBooking(context.Background(), bookingID))
	})

	t.Run("missing booking", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := cmd.CancelBooking(context.Background(), bookingID)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("already-final booking is not written back", func(t *testing.T) {
		cmd, m := newBookingCommands(t)
		entity := booking.ReconstructBooking(bookingID, uuid.New(), uuid.New(), slot, booking.StatusCompleted, base, base)

		m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(entity, nil)

		err := cmd.CancelBooking(context.Background(), bookingID)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}
