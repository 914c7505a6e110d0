package requests

type PlaceOrderItem struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0,lte=20"`
}

type PlaceOrder struct {
	SlotTime string           `json:"slot_time" validate:"required"`
	Items    []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`
	Note     string           `json:"note" validate:"max=300"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required"`
}
