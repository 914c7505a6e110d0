package schedule

import (
	"chaipoint-service/internal/pkg/constvars"
	"fmt"
	"time"
)

// WindowForDate returns the delivery window anchored on the given calendar
// date: date at 23:00 through the next day at 05:00, in date's location.
// Pure date arithmetic, no clock dependency.
func WindowForDate(date time.Time) DeliveryWindow {
	year, month, day := date.Date()
	start := time.Date(year, month, day, WindowOpenHour, 0, 0, 0, date.Location())
	return DeliveryWindow{Start: start, End: start.Add(6 * time.Hour)}
}

// CurrentWorkingDay maps a clock time to the window an admin cares about at
// that moment. The four cases are policy, not derivation: during hour 5 the
// just-ended window is shown for review rather than jumping to tonight's.
func CurrentWorkingDay(now time.Time) DeliveryWindow {
	hour := now.Hour()
	switch {
	case hour == WindowOpenHour:
		// 23:00-23:59, window just started tonight
		return WindowForDate(now)
	case hour < WindowCloseHour:
		// 00:00-04:59, window started yesterday evening
		return WindowForDate(now.AddDate(0, 0, -1))
	case hour == WindowCloseHour:
		// 05:00-05:59, show the window that just ended
		return WindowForDate(now.AddDate(0, 0, -1))
	default:
		// 06:00-22:59, tonight's upcoming window
		return WindowForDate(now)
	}
}

// Label renders the window for admin headers, e.g.
// "Dec 9, 11pm - Dec 10, 5am".
func (w DeliveryWindow) Label() string {
	return fmt.Sprintf("%s, 11pm - %s, 5am", w.Start.Format("Jan 2"), w.End.Format("Jan 2"))
}

// DateInputToWorkingDay converts a date-picker value ("2024-03-15") into its
// working day. Parsing happens in the local zone so the window lands on the
// picked calendar date rather than drifting across a UTC boundary.
func DateInputToWorkingDay(input string) (DeliveryWindow, error) {
	date, err := time.ParseInLocation(constvars.DateInputLayout, input, time.Local)
	if err != nil {
		return DeliveryWindow{}, fmt.Errorf("invalid date input %q: %w", input, err)
	}
	return WindowForDate(date), nil
}

// WorkingDayToDateInput is the inverse of DateInputToWorkingDay: the calendar
// date of the window's start.
func WorkingDayToDateInput(w DeliveryWindow) string {
	return w.Start.Format(constvars.DateInputLayout)
}
