//go:build unit

package fairplay_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"condo-parking/internal/domain/unit"
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/errs"
	"condo-parking/internal/usecase/fairplay"
	fairplaymock "condo-parking/tests/mock/fairplay"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func activeSnapshot(id uuid.UUID, usageMinutes int32) *fairplay.UnitSnapshot {
	return &fairplay.UnitSnapshot{
		ID:                      id,
		Status:                  unit.StatusActive,
		WeeklyQuotaHours:        15,
		CurrentWeekUsageMinutes: usageMinutes,
	}
}

func TestValidator_Validate(t *testing.T) {
	unitID := uuid.New()
	noHistory := infra.WrapRepoErr("failed to read last booking end", nil, infra.KindNotFound)

	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 14, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		setup func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader)
		want  fairplay.Verdict
	}{
		{
			name:  "active unit with free quota and no recent booking is admitted",
			start: start,
			end:   end,
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {
				units.EXPECT().FindByID(gomock.Any(), unitID).Return(activeSnapshot(unitID, 0), nil).Times(2)
				history.EXPECT().LastBookingEnd(gomock.Any(), unitID).Return(time.Time{}, noHistory)
			},
			want: fairplay.Verdict{Allowed: true},
		},
		{
			name:  "booking that would exceed the weekly quota is denied",
			start: start,
			end:   start.Add(2 * time.Hour),
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {
				units.EXPECT().FindByID(gomock.Any(), unitID).Return(activeSnapshot(unitID, 840), nil).Times(2)
			},
			want: fairplay.Verdict{Allowed: false, Reason: "Weekly quota of 15 hours exceeded."},
		},
		{
			name:  "delinquent unit is denied before quota is ever read",
			start: start,
			end:   end,
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {
				units.EXPECT().FindByID(gomock.Any(), unitID).Return(&fairplay.UnitSnapshot{
					ID:               unitID,
					Status:           unit.StatusDelinquent,
					WeeklyQuotaHours: 15,
				}, nil)
			},
			want: fairplay.Verdict{Allowed: false, Reason: "Unit is delinquent and cannot make bookings."},
		},
		{
			name:  "start one hour after the previous booking ends violates the cooldown",
			start: start,
			end:   end,
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {
				units.EXPECT().FindByID(gomock.Any(), unitID).Return(activeSnapshot(unitID, 60), nil).Times(2)
				history.EXPECT().LastBookingEnd(gomock.Any(), unitID).
					Return(time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC), nil)
			},
			want: fairplay.Verdict{Allowed: false, Reason: "Cooldown period of 2 hours not respected."},
		},
		{
			name:  "ten-minute slot is rejected without touching storage",
			start: start,
			end:   start.Add(10 * time.Minute),
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {},
			want:  fairplay.Verdict{Allowed: false, Reason: "Booking duration is invalid (min 15m, max 4h, 15m intervals)."},
		},
		{
			name:  "minimum-length slot for a fresh unit is admitted",
			start: start,
			end:   start.Add(15 * time.Minute),
			setup: func(units *fairplaymock.MockUnitReader, history *fairplaymock.MockBookingHistoryReader) {
				units.EXPECT().FindByID(gomock.Any(), unitID).Return(activeSnapshot(unitID, 0), nil).Times(2)
				history.EXPECT().LastBookingEnd(gomock.Any(), unitID).Return(time.Time{}, noHistory)
			},
			want: fairplay.Verdict{Allowed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			units := fairplaymock.NewMockUnitReader(ctrl)
			history := fairplaymock.NewMockBookingHistoryReader(ctrl)
			tt.setup(units, history)

			validator := fairplay.NewValidator(fairplay.DefaultConfig(), units, history, discardLogger)
			got := validator.Validate(context.Background(), unitID, tt.start, tt.end)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("verdict mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidator_Validate_FailsClosedOnStorageErrors(t *testing.T) {
	unitID := uuid.New()
	ctrl := gomock.NewController(t)
	units := fairplaymock.NewMockUnitReader(ctrl)
	history := fairplaymock.NewMockBookingHistoryReader(ctrl)

	units.EXPECT().FindByID(gomock.Any(), unitID).
		Return(nil, infra.WrapRepoErr("failed to find unit", errs.New("connection reset"))).
		Times(1)

	validator := fairplay.NewValidator(fairplay.DefaultConfig(), units, history, discardLogger)
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	got := validator.Validate(context.Background(), unitID, start, start.Add(time.Hour))

	assert.False(t, got.Allowed)
	assert.Equal(t, "Unit is delinquent and cannot make bookings.", got.Reason)
}

// The validator holds no state: the same request against the same reads must
// produce the same verdict every time.
func TestValidator_Validate_Idempotent(t *testing.T) {
	unitID := uuid.New()
	ctrl := gomock.NewController(t)
	units := fairplaymock.NewMockUnitReader(ctrl)
	history := fairplaymock.NewMockBookingHistoryReader(ctrl)

	units.EXPECT().FindByID(gomock.Any(), unitID).
		DoAndReturn(func(context.Context, uuid.UUID) (*fairplay.UnitSnapshot, error) {
			return activeSnapshot(unitID, 120), nil
		}).AnyTimes()
	history.EXPECT().LastBookingEnd(gomock.Any(), unitID).
		Return(time.Time{}, infra.WrapRepoErr("failed to read last booking end", nil, infra.KindNotFound)).
		AnyTimes()

	validator := fairplay.NewValidator(fairplay.DefaultConfig(), units, history, discardLogger)
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

	first := validator.Validate(context.Background(), unitID, start, start.Add(time.Hour))
	second := validator.Validate(context.Background(), unitID, start, start.Add(time.Hour))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("verdict changed between identical calls (-first +second):\n%s", diff)
	}
	assert.True(t, first.Allowed)
}

// Rules run front to back and stop at the first non-allow. A rule placed
// after the failing one must never be consulted.
func TestValidator_ShortCircuits(t *testing.T) {
	unitID := uuid.New()
	ctrl := gomock.NewController(t)
	units := fairplaymock.NewMockUnitReader(ctrl)
	history := fairplaymock.NewMockBookingHistoryReader(ctrl)

	// Delinquency denies; quota and cooldown must not be reached, so their
	// readers get no expectations at all.
	units.EXPECT().FindByID(gomock.Any(), unitID).Return(&fairplay.UnitSnapshot{
		ID:     unitID,
		Status: unit.StatusDelinquent,
	}, nil).Times(1)

	cfg := fairplay.DefaultConfig()
	validator := fairplay.NewValidatorWithRules(discardLogger,
		fairplay.NewDurationRule(cfg),
		fairplay.NewDelinquencyRule(units),
		fairplay.NewQuotaRule(units, cfg),
		fairplay.NewCooldownRule(history, cfg),
	)

	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	got := validator.Validate(context.Background(), unitID, start, start.Add(time.Hour))

	assert.False(t, got.Allowed)
	assert.Equal(t, "Unit is delinquent and cannot make bookings.", got.Reason)
}
