package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestWindowForDate(t *testing.T) {
	window := WindowForDate(localDate(2024, time.December, 9, 14, 37))

	assert.Equal(t, localDate(2024, time.December, 9, 23, 0), window.Start)
	assert.Equal(t, localDate(2024, time.December, 10, 5, 0), window.End)
	assert.Equal(t, 6*time.Hour, window.End.Sub(window.Start))
	assert.Equal(t, 23, window.Start.Hour())
	assert.Equal(t, 5, window.End.Hour())
	assert.Equal(t, 0, window.End.Minute())
}

func TestCurrentWorkingDay(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		wantStartDate time.Time
	}{
		{
			name:          "just opened at 23:00 selects tonight",
			now:           localDate(2024, time.December, 9, 23, 0),
			wantStartDate: localDate(2024, time.December, 9, 23, 0),
		},
		{
			name:          "in progress after midnight selects yesterday",
			now:           localDate(2024, time.December, 10, 1, 0),
			wantStartDate: localDate(2024, time.December, 9, 23, 0),
		},
		{
			name:          "04:59 still selects yesterday",
			now:           localDate(2024, time.December, 10, 4, 59),
			wantStartDate: localDate(2024, time.December, 9, 23, 0),
		},
		{
			name:          "hour 5 keeps the just-ended window for review",
			now:           localDate(2024, time.December, 10, 5, 30),
			wantStartDate: localDate(2024, time.December, 9, 23, 0),
		},
		{
			name:          "06:00 flips to tonight's upcoming window",
			now:           localDate(2024, time.December, 10, 6, 0),
			wantStartDate: localDate(2024, time.December, 10, 23, 0),
		},
		{
			name:          "daytime selects tonight",
			now:           localDate(2024, time.December, 10, 15, 12),
			wantStartDate: localDate(2024, time.December, 10, 23, 0),
		},
		{
			name:          "22:59 still selects tonight",
			now:           localDate(2024, time.December, 10, 22, 59),
			wantStartDate: localDate(2024, time.December, 10, 23, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := CurrentWorkingDay(tt.now)
			assert.Equal(t, tt.wantStartDate, window.Start)
			assert.Equal(t, 6*time.Hour, window.End.Sub(window.Start))
		})
	}
}

func TestCurrentWorkingDayMonthBoundary(t *testing.T) {
	// 00:30 on the 1st belongs to the window that opened on the last day of
	// the previous month; the interval must stay contiguous across it.
	window := CurrentWorkingDay(localDate(2024, time.March, 1, 0, 30))

	assert.Equal(t, localDate(2024, time.February, 29, 23, 0), window.Start)
	assert.Equal(t, localDate(2024, time.March, 1, 5, 0), window.End)
	assert.Equal(t, 6*time.Hour, window.End.Sub(window.Start))
}

func TestDeliveryWindowLabel(t *testing.T) {
	window := WindowForDate(localDate(2024, time.December, 9, 0, 0))
	assert.Equal(t, "Dec 9, 11pm - Dec 10, 5am", window.Label())
}

func TestDateInputRoundTrip(t *testing.T) {
	window, err := DateInputToWorkingDay("2024-03-15")

	assert.NoError(t, err)
	assert.Equal(t, localDate(2024, time.March, 15, 23, 0), window.Start)
	assert.Equal(t, "2024-03-15", WorkingDayToDateInput(window))
}

func TestDateInputToWorkingDayInvalid(t *testing.T) {
	for _, input := range []string{"", "15-03-2024", "2024-13-40", "yesterday"} {
		_, err := DateInputToWorkingDay(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}
