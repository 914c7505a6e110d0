package schedule

import (
	"chaipoint-service/internal/app/models"
	"time"
)

const (
	// WindowOpenHour and WindowCloseHour bound the nightly delivery window:
	// 23:00 on the working day's calendar date through 05:00 the next morning.
	WindowOpenHour  = 23
	WindowCloseHour = 5

	// SlotInterval is the spacing between consecutive delivery slots.
	SlotInterval = 30 * time.Minute

	// SlotsPerWindow is the fixed slot count of one window: 6 hours at
	// 30-minute steps, both endpoints included.
	SlotsPerWindow = 13

	// BookingBuffer is the minimum lead time the kitchen needs between
	// placing an order and the slot's start.
	BookingBuffer = 30 * time.Minute
)

// DeliveryWindow is one night's operation as a half-open interval
// [Start, End): Start at 23:00 local, End the next day at 05:00 local.
type DeliveryWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is a single bookable 30-minute delivery opportunity.
type Slot struct {
	StartTime  time.Time `json:"startTime"`
	Display    string    `json:"display"`
	IsBookable bool      `json:"isBookable"`
	IsPast     bool      `json:"isPast"`
}

// WindowState classifies a clock time relative to the delivery window.
type WindowState int

const (
	// BeforeWindow covers daytime hours [6,22]: preparing for tonight.
	BeforeWindow WindowState = iota
	// ActiveWindow covers hour 23 and hours [0,4]: deliveries running.
	ActiveWindow
	// AfterWindow is hour 5: the window just closed, reset period.
	AfterWindow
)

func (s WindowState) String() string {
	switch s {
	case BeforeWindow:
		return "before_window"
	case ActiveWindow:
		return "active_window"
	case AfterWindow:
		return "after_window"
	}
	return "unknown"
}

// GroupedSlot is one row of the admin live feed: a slot plus its orders
// keyed by hostel block. Every recognized block is present, empty or not.
type GroupedSlot struct {
	SlotTime time.Time                             `json:"slotTime"`
	Slot     Slot                                  `json:"slot"`
	Blocks   map[models.HostelBlock][]models.Order `json:"blocks"`
}
