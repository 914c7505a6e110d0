package responses

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	FullName    string      `json:"full_name"`
	HostelBlock string      `json:"hostel_block"`
	RoomNumber  string      `json:"room_number"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	SlotTime    string      `json:"slot_time"`
	SlotDisplay string      `json:"slot_display"`
	Status      string      `json:"status"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   string      `json:"created_at"`
}
