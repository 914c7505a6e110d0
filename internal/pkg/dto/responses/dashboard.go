package responses

type FeedBlock struct {
	HostelBlock string  `json:"hostel_block"`
	Orders      []Order `json:"orders"`
}

type FeedSlot struct {
	SlotTime    string      `json:"slot_time"`
	SlotDisplay string      `json:"slot_display"`
	IsPast      bool        `json:"is_past"`
	OrderCount  int         `json:"order_count"`
	Blocks      []FeedBlock `json:"blocks"`
}

type LiveFeed struct {
	WorkingDay  string     `json:"working_day"`
	WindowLabel string     `json:"window_label"`
	Slots       []FeedSlot `json:"slots"`
}

type SlotSummary struct {
	SlotDisplay string `json:"slot_display"`
	OrderCount  int    `json:"order_count"`
}

type DashboardSummary struct {
	WorkingDay      string             `json:"working_day"`
	WindowLabel     string             `json:"window_label"`
	TotalOrders     int                `json:"total_orders"`
	TotalRevenue    float64            `json:"total_revenue"`
	OrdersByStatus  map[string]int     `json:"orders_by_status"`
	OrdersByBlock   map[string]int     `json:"orders_by_block"`
	BusiestSlots    []SlotSummary      `json:"busiest_slots"`
	RevenueByStatus map[string]float64 `json:"revenue_by_status"`
}
