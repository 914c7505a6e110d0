package contracts

import (
	"chaipoint-service/internal/app/models"
	"context"
)

type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order *models.Order) error
	NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previousStatus models.OrderStatus) error
}
