package responses

type Slot struct {
	SlotTime   string `json:"slot_time"`
	Display    string `json:"display"`
	IsBookable bool   `json:"is_bookable"`
	IsPast     bool   `json:"is_past"`
}

type SlotList struct {
	WindowState string `json:"window_state"`
	WindowLabel string `json:"window_label"`
	Slots       []Slot `json:"slots"`
}

type WorkingDay struct {
	Date        string `json:"date"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	WindowLabel string `json:"window_label"`
	WindowState string `json:"window_state"`
}
