package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	d, err := Distance(22.7196, 75.8577, 22.7196, 75.8577)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_KnownValue(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d, err := Distance(55.7558, 37.6173, 59.9343, 30.3351)
	require.NoError(t, err)
	assert.InDelta(t, 634000, d, 5000)
}

func TestDistance_ShortRange(t *testing.T) {
	// Один градус широты на экваторе - около 111.19 км
	d, err := Distance(0, 0, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 111195, d, 100)
}

func TestDistance_InvalidLatitude(t *testing.T) {
	_, err := Distance(91, 0, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestDistance_InvalidLongitude(t *testing.T) {
	_, err := Distance(0, 0, 0, -181)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestValidateCoordinate_Boundaries(t *testing.T) {
	assert.NoError(t, ValidateCoordinate(90, 180))
	assert.NoError(t, ValidateCoordinate(-90, -180))
	assert.Error(t, ValidateCoordinate(90.0001, 0))
	assert.Error(t, ValidateCoordinate(0, 180.0001))
}
