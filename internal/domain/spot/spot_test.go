//go:build unit

package spot_test

import (
	"strings"
	"testing"

	"condo-parking/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpot(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		s, err := spot.NewSpot("P-07", 2)
		require.NoError(t, err)
		assert.Equal(t, "P-07", s.Code())
		assert.Equal(t, int32(2), s.Floor())
		assert.True(t, s.IsActive())
	})

	t.Run("code is trimmed", func(t *testing.T) {
		s, err := spot.NewSpot("  P-07  ", 0)
		require.NoError(t, err)
		assert.Equal(t, "P-07", s.Code())
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := spot.NewSpot("   ", 0)
		assert.ErrorIs(t, err, spot.ErrEmptySpotCode)
	})

	t.Run("overlong code is rejected", func(t *testing.T) {
		_, err := spot.NewSpot(strings.Repeat("x", spot.MaxSpotCodeLength+1), 0)
		assert.ErrorIs(t, err, spot.ErrSpotCodeTooLong)
	})
}
