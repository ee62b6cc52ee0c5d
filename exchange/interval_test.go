package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalNamesRoundTrip(t *testing.T) {
	for i := OneMinute; i <= OneMonth; i++ {
		parsed, err := ParseInterval(i.String())
		require.NoError(t, err)

		assert.Equal(t, i, parsed)
	}
}

func TestIntervalDurations(t *testing.T) {
	assert.Equal(t, "15m", FifteenMinute.String())
	assert.Equal(t, 15*time.Minute, FifteenMinute.Duration())
	assert.Equal(t, "1month", OneMonth.String())
	assert.Equal(t, 30*24*time.Hour, OneMonth.Duration())
}

func TestParseIntervalRejectsUnknown(t *testing.T) {
	_, err := ParseInterval("7m")
	assert.Error(t, err)
}
