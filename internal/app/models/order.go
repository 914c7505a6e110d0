package models

import "time"

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "placed"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderStatusFlow encodes the admin workflow. Cancel is allowed from every
// non-terminal state; delivered and cancelled are terminal.
var orderStatusFlow = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:         {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:       {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusFlow[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderItem struct {
	MenuItemID string  `json:"menuItemId" bson:"menuItemId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Quantity   int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	UserID       string      `json:"userId" bson:"userId"`
	CustomerName string      `json:"customerName" bson:"customerName"`
	HostelBlock  HostelBlock `json:"hostelBlock" bson:"hostelBlock"`
	RoomNumber   string      `json:"roomNumber" bson:"roomNumber"`
	Items        []OrderItem `json:"items" bson:"items"`
	TotalAmount  float64     `json:"totalAmount" bson:"totalAmount"`
	Status       OrderStatus `json:"status" bson:"status"`
	SlotTime     time.Time   `json:"slotTime" bson:"slotTime"`
	Note         string      `json:"note,omitempty" bson:"note,omitempty"`
	TimeModel    `bson:",inline"`
}
