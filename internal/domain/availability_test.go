package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkingHours(t *testing.T) {
	hours, err := ParseWorkingHours("08:30", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, hours.Open)
	assert.Equal(t, 17*time.Hour, hours.Close)

	for _, tc := range [][2]string{
		{"9", "18:00"},
		{"09:00", "25:00"},
		{"18:00", "09:00"},
		{"10:00", "10:00"},
	} {
		_, err := ParseWorkingHours(tc[0], tc[1])
		assert.Error(t, err, "%s-%s", tc[0], tc[1])
	}
}

func TestWorkingHours_Bounds(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	day := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC) // already March 3 in MSK

	open, closing := DefaultWorkingHours().Bounds(day, msk)

	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, msk), open)
	assert.Equal(t, time.Date(2026, 3, 3, 18, 0, 0, 0, msk), closing)
}
