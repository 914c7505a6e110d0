package notifier

import (
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type orderNotifier struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewOrderNotifier(rabbitMQConnection *amqp091.Connection, queue string) (contracts.OrderNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &orderNotifier{
		Channel: channel,
		Queue:   queue,
	}, nil
}

type orderEvent struct {
	Event          string             `json:"event"`
	OrderID        string             `json:"order_id"`
	UserID         string             `json:"user_id"`
	HostelBlock    string             `json:"hostel_block"`
	RoomNumber     string             `json:"room_number"`
	SlotTime       string             `json:"slot_time"`
	Status         models.OrderStatus `json:"status"`
	PreviousStatus models.OrderStatus `json:"previous_status,omitempty"`
	TotalAmount    float64            `json:"total_amount"`
}

func (s *orderNotifier) NotifyOrderPlaced(ctx context.Context, order *models.Order) error {
	return s.publish(ctx, &orderEvent{
		Event:       "order.placed",
		OrderID:     order.ID,
		UserID:      order.UserID,
		HostelBlock: string(order.HostelBlock),
		RoomNumber:  order.RoomNumber,
		SlotTime:    order.SlotTime.Format(constvars.SlotTimeLayout),
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	})
}

func (s *orderNotifier) NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previousStatus models.OrderStatus) error {
	return s.publish(ctx, &orderEvent{
		Event:          "order.status_changed",
		OrderID:        order.ID,
		UserID:         order.UserID,
		HostelBlock:    string(order.HostelBlock),
		RoomNumber:     order.RoomNumber,
		SlotTime:       order.SlotTime.Format(constvars.SlotTimeLayout),
		Status:         order.Status,
		PreviousStatus: previousStatus,
		TotalAmount:    order.TotalAmount,
	})
}

func (s *orderNotifier) publish(ctx context.Context, event *orderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
