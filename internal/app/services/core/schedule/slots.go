package schedule

import "time"

// StateAt classifies now against the delivery window. The three states
// partition the day: [6,22] before, 23 and [0,4] active, 5 after.
func StateAt(now time.Time) WindowState {
	hour := now.Hour()
	switch {
	case hour == WindowOpenHour || hour < WindowCloseHour:
		return ActiveWindow
	case hour == WindowCloseHour:
		return AfterWindow
	default:
		return BeforeWindow
	}
}

// windowForState picks which window's slots are enumerated. Only the small
// hours of an active window anchor on yesterday; hour 23, daytime and the
// hour-5 reset all anchor on today's date (the hour-5 "show last night"
// behavior belongs to CurrentWorkingDay, not to the booking slot list).
func windowForState(now time.Time, state WindowState) DeliveryWindow {
	if state == ActiveWindow && now.Hour() < WindowCloseHour {
		return WindowForDate(now.AddDate(0, 0, -1))
	}
	return WindowForDate(now)
}

// EnumerateSlots returns the 13 slots of the operative delivery window,
// classified against now. bypass forces every slot available regardless of
// buffer or past checks; it is threaded from configuration by callers and
// never read from the environment here.
func EnumerateSlots(now time.Time, bypass bool) []Slot {
	state := StateAt(now)
	window := windowForState(now, state)

	slots := make([]Slot, 0, SlotsPerWindow)
	for t := window.Start; !t.After(window.End); t = t.Add(SlotInterval) {
		slots = append(slots, Slot{
			StartTime:  t,
			Display:    SlotDisplay(t),
			IsPast:     !t.After(now),
			IsBookable: slotAvailable(t, now, state, bypass),
		})
	}
	return slots
}

// slotAvailable applies two independent policies: the 30-minute kitchen
// buffer (strict inequality, a slot exactly on the buffer edge is not
// sellable) and, during the active window, a refusal to sell slots whose
// start has elapsed. Outside the active window every generated slot is in
// the future, so the buffer check alone suffices.
func slotAvailable(slotStart, now time.Time, state WindowState, bypass bool) bool {
	if bypass {
		return true
	}
	if !slotStart.After(now.Add(BookingBuffer)) {
		return false
	}
	if state == ActiveWindow && !slotStart.After(now) {
		return false
	}
	return true
}

// SlotKey truncates a timestamp to its 30-minute slot boundary (minute < 30
// maps to :00, otherwise :30; seconds dropped). Both slot enumeration and
// order grouping bucket through this one function so they can never disagree
// on boundaries.
func SlotKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()-t.Minute()%30, 0, 0, t.Location())
}

// SlotDisplay renders a 12-hour clock without a leading zero,
// e.g. "11:00 PM", "2:30 AM".
func SlotDisplay(t time.Time) string {
	return t.Format("3:04 PM")
}
