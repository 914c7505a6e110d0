package orders

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/app/services/core/schedule"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository contracts.OrderRepository
	MenuRepository  contracts.MenuRepository
	OrderNotifier   contracts.OrderNotifier
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	nowFunc         func() time.Time
}

func NewOrderUsecase(
	orderRepository contracts.OrderRepository,
	menuRepository contracts.MenuRepository,
	orderNotifier contracts.OrderNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrderUsecase {
	return &orderUsecase{
		OrderRepository: orderRepository,
		MenuRepository:  menuRepository,
		OrderNotifier:   orderNotifier,
		InternalConfig:  internalConfig,
		Log:             logger,
		nowFunc:         time.Now,
	}
}

func (uc *orderUsecase) PlaceOrder(ctx context.Context, session *models.Session, request *requests.PlaceOrder) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.PlaceOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slot_time", request.SlotTime),
	)

	if !session.HostelBlock.Valid() {
		return nil, exceptions.ErrUnknownHostelBlock(fmt.Errorf("hostel block %q is not deliverable", session.HostelBlock))
	}

	requestedSlot, err := time.Parse(constvars.SlotTimeLayout, request.SlotTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	slotTime := schedule.SlotKey(requestedSlot.In(time.Local))

	// Availability is re-checked at placement time: the slot list the client
	// rendered may have gone stale while the cart was open.
	now := uc.nowFunc()
	bypass := uc.InternalConfig.Ordering.EnableAllSlots
	slot, found := findSlot(schedule.EnumerateSlots(now, bypass), slotTime)
	if !found {
		return nil, exceptions.ErrSlotOutsideWindow(fmt.Errorf("slot %s is outside the delivery window", slotTime.Format(constvars.SlotTimeLayout)))
	}
	if !slot.IsBookable {
		return nil, exceptions.ErrSlotNoLongerAvailable(fmt.Errorf("slot %s closed at %s", slot.Display, now.Format(time.RFC3339)))
	}

	orderItems, totalAmount, err := uc.resolveItems(ctx, request.Items)
	if err != nil {
		return nil, err
	}

	createdAt := now
	order := &models.Order{
		UserID:       session.UserID,
		CustomerName: session.FullName,
		HostelBlock:  session.HostelBlock,
		RoomNumber:   session.RoomNumber,
		Items:        orderItems,
		TotalAmount:  totalAmount,
		Status:       models.OrderStatusPlaced,
		SlotTime:     slotTime,
		Note:         request.Note,
		TimeModel:    models.NewTimeModel(createdAt),
	}

	orderID, err := uc.OrderRepository.CreateOrder(ctx, order)
	if err != nil {
		uc.Log.Error("orderUsecase.PlaceOrder error creating order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	order.ID = orderID

	if err := uc.OrderNotifier.NotifyOrderPlaced(ctx, order); err != nil {
		// The order is committed; a lost notification is not worth a 500.
		uc.Log.Warn("orderUsecase.PlaceOrder error publishing order event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	uc.Log.Info("orderUsecase.PlaceOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("order_id", orderID),
	)
	return buildOrderResponse(order), nil
}

func (uc *orderUsecase) GetOrderByID(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error) {
	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && order.UserID != session.UserID {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	return buildOrderResponse(order), nil
}

func (uc *orderUsecase) ListOrdersBySession(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Order, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.ListOrdersBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	offset := (pagination.Page - 1) * pagination.PageSize
	orders, total, err := uc.OrderRepository.FindByUserID(ctx, session.UserID, offset, pagination.PageSize)
	if err != nil {
		uc.Log.Error("orderUsecase.ListOrdersBySession error fetching orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *buildOrderResponse(&orders[i]))
	}

	return result, &responses.Pagination{
		Total:    int(total),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func (uc *orderUsecase) CancelOrder(ctx context.Context, session *models.Session, orderID string) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.CancelOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("order_id", orderID),
	)

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && order.UserID != session.UserID {
		return nil, exceptions.ErrOrderNotFound(nil)
	}

	return uc.transition(ctx, order, models.OrderStatusCancelled)
}

func (uc *orderUsecase) UpdateOrderStatus(ctx context.Context, session *models.Session, orderID string, request *requests.UpdateOrderStatus) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.UpdateOrderStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("order_id", orderID),
		zap.String("status", request.Status),
	)

	nextStatus := models.OrderStatus(request.Status)
	if !nextStatus.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("unknown status %q", request.Status))
	}

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}

	return uc.transition(ctx, order, nextStatus)
}

func (uc *orderUsecase) transition(ctx context.Context, order *models.Order, nextStatus models.OrderStatus) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !order.Status.CanTransitionTo(nextStatus) {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("cannot move order from %s to %s", order.Status, nextStatus))
	}

	previousStatus := order.Status
	order.Status = nextStatus
	order.UpdatedAt = uc.nowFunc()

	if err := uc.OrderRepository.UpdateOrder(ctx, order); err != nil {
		uc.Log.Error("orderUsecase.transition error updating order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.OrderNotifier.NotifyOrderStatusChanged(ctx, order, previousStatus); err != nil {
		uc.Log.Warn("orderUsecase.transition error publishing status event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	return buildOrderResponse(order), nil
}

func (uc *orderUsecase) resolveItems(ctx context.Context, items []requests.PlaceOrderItem) ([]models.OrderItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, exceptions.ErrOrderEmpty(nil)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	var totalAmount float64
	for _, item := range items {
		menuItem, err := uc.MenuRepository.FindByID(ctx, item.MenuItemID)
		if err != nil {
			return nil, 0, err
		}
		if menuItem == nil {
			return nil, 0, exceptions.ErrMenuItemNotFound(fmt.Errorf("menu item %s not found", item.MenuItemID))
		}
		if !menuItem.Available {
			return nil, 0, exceptions.ErrMenuItemUnavailable(fmt.Errorf("menu item %s is unavailable", item.MenuItemID))
		}

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   item.Quantity,
		})
		totalAmount += menuItem.Price * float64(item.Quantity)
	}
	return orderItems, totalAmount, nil
}

func findSlot(slots []schedule.Slot, slotTime time.Time) (schedule.Slot, bool) {
	for _, slot := range slots {
		if slot.StartTime.Equal(slotTime) {
			return slot, true
		}
	}
	return schedule.Slot{}, false
}

func buildOrderResponse(order *models.Order) *responses.Order {
	items := make([]responses.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, responses.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return &responses.Order{
		OrderID:     order.ID,
		UserID:      order.UserID,
		FullName:    order.CustomerName,
		HostelBlock: string(order.HostelBlock),
		RoomNumber:  order.RoomNumber,
		Items:       items,
		TotalAmount: order.TotalAmount,
		SlotTime:    order.SlotTime.Format(constvars.SlotTimeLayout),
		SlotDisplay: schedule.SlotDisplay(order.SlotTime),
		Status:      string(order.Status),
		Note:        order.Note,
		CreatedAt:   order.CreatedAt.Format(constvars.SlotTimeLayout),
	}
}
