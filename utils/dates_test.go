package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	day, err := ParseDate("2026-08-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", FormatDate(day))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"20-08-2026", "2026/08/20", "2026-8-2", "yesterday"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestTodayIsCanonical(t *testing.T) {
	parsed, err := ParseDate(Today())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 25*time.Hour)
}
