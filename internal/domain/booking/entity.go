package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingFinal  = errors.New("booking is already in a final state")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking reserves one physical spot for a unit over a bounded interval.
type Booking struct {
	id        uuid.UUID
	unitID    uuid.UUID
	spotID    uuid.UUID
	timeSlot  TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(unitID, spotID uuid.UUID, slot TimeSlot) *Booking {
	return &Booking{
		id:       uuid.New(),
		unitID:   unitID,
		spotID:   spotID,
		timeSlot: slot,
		status:   StatusConfirmed,
	}
}

func ReconstructBooking(
	id, unitID, spotID uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		unitID:    unitID,
		spotID:    spotID,
		timeSlot:  timeSlot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status.IsFinal() {
		return ErrBookingFinal
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) HasExpired(now time.Time) bool {
	return now.After(b.timeSlot.End())
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) UnitID() uuid.UUID   { return b.unitID }
func (b *Booking) SpotID() uuid.UUID   { return b.spotID }
func (b *Booking) TimeSlot() TimeSlot  { return b.timeSlot }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
