package contracts

import (
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, session *models.Session, request *requests.PlaceOrder) (*responses.Order, error)
	GetOrderByID(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error)
	ListOrdersBySession(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Order, *responses.Pagination, error)
	CancelOrder(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error)
	UpdateOrderStatus(ctx context.Context, session *models.Session, orderID string, request *requests.UpdateOrderStatus) (*responses.Order, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) (orderID string, err error)
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.Order, int64, error)
	FindBySlotTimeRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
}
