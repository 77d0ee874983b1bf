package dates_test

import (
	"testing"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISORoundTrip(t *testing.T) {
	for _, iso := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2025-07-04"} {
		parsed, err := dates.FromISO(iso)
		require.NoError(t, err)
		assert.Equal(t, iso, dates.ToISO(parsed))
	}
}

func TestFromISO_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2024-13-01", "not-a-date", "2024/01/01"} {
		_, err := dates.FromISO(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-03-01", dates.AddDays("2024-02-29", 1))
	assert.Equal(t, "2024-02-22", dates.AddDays("2024-02-29", -7))
	// unparseable input passes through
	assert.Equal(t, "garbage", dates.AddDays("garbage", 3))
}

func TestWeekStart(t *testing.T) {
	// 2024-05-15 is a Wednesday.
	wed := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)

	mon := dates.WeekStart(wed, "mon")
	assert.Equal(t, "2024-05-13", dates.ToISO(mon))
	assert.Equal(t, time.Monday, mon.Weekday())

	sun := dates.WeekStart(wed, "sun")
	assert.Equal(t, "2024-05-12", dates.ToISO(sun))
	assert.Equal(t, time.Sunday, sun.Weekday())

	// A Sunday reference with monday start goes back six days.
	sunday := time.Date(2024, 5, 19, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-05-13", dates.ToISO(dates.WeekStart(sunday, "mon")))
	assert.Equal(t, "2024-05-19", dates.ToISO(dates.WeekStart(sunday, "sun")))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "wed", dates.DayKey(time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "sun", dates.DayKey(time.Date(2024, 5, 19, 0, 0, 0, 0, time.Local)))
}
