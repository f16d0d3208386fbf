package spot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySpotCode   = errors.New("spot code cannot be empty")
	ErrSpotCodeTooLong = errors.New("spot code is too long (max 16 characters)")
)

const MaxSpotCodeLength = 16

type Spot struct {
	id        uuid.UUID
	code      string
	floor     int32
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSpot(code string, floor int32) (*Spot, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptySpotCode
	}
	if len(code) > MaxSpotCodeLength {
		return nil, ErrSpotCodeTooLong
	}

	return &Spot{
		id:     uuid.New(),
		code:   code,
		floor:  floor,
		active: true,
	}, nil
}

func ReconstructSpot(id uuid.UUID, code string, floor int32, active bool, createdAt, updatedAt time.Time) *Spot {
	return &Spot{
		id:        id,
		code:      code,
		floor:     floor,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) Code() string         { return s.code }
func (s *Spot) Floor() int32         { return s.floor }
func (s *Spot) IsActive() bool       { return s.active }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time { return s.updatedAt }
