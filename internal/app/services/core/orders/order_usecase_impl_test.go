package orders

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.Order, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	orders, _ := args.Get(0).([]models.Order)
	return orders, int64(args.Int(1)), args.Error(2)
}

func (m *mockOrderRepository) FindBySlotTimeRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	args := m.Called(ctx, start, end)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type mockMenuRepository struct {
	mock.Mock
}

func (m *mockMenuRepository) CreateMenuItem(ctx context.Context, menuItem *models.MenuItem) (string, error) {
	args := m.Called(ctx, menuItem)
	return args.String(0), args.Error(1)
}

func (m *mockMenuRepository) FindByID(ctx context.Context, menuItemID string) (*models.MenuItem, error) {
	args := m.Called(ctx, menuItemID)
	if menuItem, ok := args.Get(0).(*models.MenuItem); ok {
		return menuItem, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMenuRepository) FindAll(ctx context.Context, onlyAvailable bool, category string) ([]models.MenuItem, error) {
	args := m.Called(ctx, onlyAvailable, category)
	menuItems, _ := args.Get(0).([]models.MenuItem)
	return menuItems, args.Error(1)
}

func (m *mockMenuRepository) UpdateMenuItem(ctx context.Context, menuItem *models.MenuItem) error {
	args := m.Called(ctx, menuItem)
	return args.Error(0)
}

func (m *mockMenuRepository) DeleteByID(ctx context.Context, menuItemID string) error {
	args := m.Called(ctx, menuItemID)
	return args.Error(0)
}

type mockOrderNotifier struct {
	mock.Mock
}

func (m *mockOrderNotifier) NotifyOrderPlaced(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderNotifier) NotifyOrderStatusChanged(ctx context.Context, order *models.Order, previousStatus models.OrderStatus) error {
	args := m.Called(ctx, order, previousStatus)
	return args.Error(0)
}

func newTestOrderUsecase(orderRepo *mockOrderRepository, menuRepo *mockMenuRepository, notifier *mockOrderNotifier, now time.Time, bypass bool) *orderUsecase {
	return &orderUsecase{
		OrderRepository: orderRepo,
		MenuRepository:  menuRepo,
		OrderNotifier:   notifier,
		InternalConfig: &config.InternalConfig{
			Ordering: config.Ordering{EnableAllSlots: bypass},
		},
		Log:     zap.NewNop(),
		nowFunc: func() time.Time { return now },
	}
}

func studentSession() *models.Session {
	return &models.Session{
		SessionID:   "session-1",
		UserID:      "user-1",
		FullName:    "Asha Verma",
		Role:        constvars.RoleStudent,
		HostelBlock: models.HostelBlockB,
		RoomNumber:  "214",
	}
}

func teaItem() *models.MenuItem {
	return &models.MenuItem{
		ID:        "item-1",
		Name:      "Masala Chai",
		Category:  "beverages",
		Price:     20,
		Available: true,
	}
}

func TestPlaceOrder(t *testing.T) {
	// Ordering at 10 PM for the 11:30 PM slot: outside the active window,
	// comfortably past the 30-minute buffer.
	now := time.Date(2024, time.December, 9, 22, 0, 0, 0, time.Local)
	slotTime := time.Date(2024, time.December, 9, 23, 30, 0, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	menuRepo := new(mockMenuRepository)
	notifier := new(mockOrderNotifier)

	menuRepo.On("FindByID", mock.Anything, "item-1").Return(teaItem(), nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return("order-1", nil)
	notifier.On("NotifyOrderPlaced", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil)

	uc := newTestOrderUsecase(orderRepo, menuRepo, notifier, now, false)
	result, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: slotTime.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "order-1", result.OrderID)
	assert.Equal(t, "B", result.HostelBlock)
	assert.Equal(t, float64(40), result.TotalAmount)
	assert.Equal(t, "placed", result.Status)
	assert.Equal(t, "11:30 PM", result.SlotDisplay)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPlaceOrderNormalizesDriftedSlotTime(t *testing.T) {
	now := time.Date(2024, time.December, 9, 22, 0, 0, 0, time.Local)
	// 23:47 drifts back to the 23:30 boundary.
	drifted := time.Date(2024, time.December, 9, 23, 47, 12, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	menuRepo := new(mockMenuRepository)
	notifier := new(mockOrderNotifier)

	menuRepo.On("FindByID", mock.Anything, "item-1").Return(teaItem(), nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(order *models.Order) bool {
		return order.SlotTime.Equal(time.Date(2024, time.December, 9, 23, 30, 0, 0, time.Local))
	})).Return("order-2", nil)
	notifier.On("NotifyOrderPlaced", mock.Anything, mock.Anything).Return(nil)

	uc := newTestOrderUsecase(orderRepo, menuRepo, notifier, now, false)
	_, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: drifted.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 1}},
	})

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrderSlotNoLongerAvailable(t *testing.T) {
	// At 11:15 PM the 11:30 PM slot is inside the buffer: the storefront may
	// still show it from a stale fetch, placement must refuse with a conflict.
	now := time.Date(2024, time.December, 9, 23, 15, 0, 0, time.Local)
	slotTime := time.Date(2024, time.December, 9, 23, 30, 0, 0, time.Local)

	uc := newTestOrderUsecase(new(mockOrderRepository), new(mockMenuRepository), new(mockOrderNotifier), now, false)
	_, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: slotTime.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 1}},
	})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestPlaceOrderSlotOutsideWindow(t *testing.T) {
	now := time.Date(2024, time.December, 9, 22, 0, 0, 0, time.Local)
	// 9 PM is before the window opens.
	slotTime := time.Date(2024, time.December, 9, 21, 0, 0, 0, time.Local)

	uc := newTestOrderUsecase(new(mockOrderRepository), new(mockMenuRepository), new(mockOrderNotifier), now, false)
	_, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: slotTime.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 1}},
	})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestPlaceOrderBypassSellsBufferedSlot(t *testing.T) {
	now := time.Date(2024, time.December, 9, 23, 15, 0, 0, time.Local)
	slotTime := time.Date(2024, time.December, 9, 23, 30, 0, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	menuRepo := new(mockMenuRepository)
	notifier := new(mockOrderNotifier)

	menuRepo.On("FindByID", mock.Anything, "item-1").Return(teaItem(), nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.Anything).Return("order-3", nil)
	notifier.On("NotifyOrderPlaced", mock.Anything, mock.Anything).Return(nil)

	uc := newTestOrderUsecase(orderRepo, menuRepo, notifier, now, true)
	result, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: slotTime.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "order-3", result.OrderID)
}

func TestPlaceOrderMenuItemUnavailable(t *testing.T) {
	now := time.Date(2024, time.December, 9, 22, 0, 0, 0, time.Local)
	slotTime := time.Date(2024, time.December, 9, 23, 30, 0, 0, time.Local)

	menuRepo := new(mockMenuRepository)
	soldOut := teaItem()
	soldOut.Available = false
	menuRepo.On("FindByID", mock.Anything, "item-1").Return(soldOut, nil)

	uc := newTestOrderUsecase(new(mockOrderRepository), menuRepo, new(mockOrderNotifier), now, false)
	_, err := uc.PlaceOrder(context.Background(), studentSession(), &requests.PlaceOrder{
		SlotTime: slotTime.Format(constvars.SlotTimeLayout),
		Items:    []requests.PlaceOrderItem{{MenuItemID: "item-1", Quantity: 1}},
	})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestGetOrderByIDHidesOtherStudentsOrders(t *testing.T) {
	orderRepo := new(mockOrderRepository)
	orderRepo.On("FindByID", mock.Anything, "order-9").Return(&models.Order{
		ID:     "order-9",
		UserID: "someone-else",
		Status: models.OrderStatusPlaced,
	}, nil)

	uc := newTestOrderUsecase(orderRepo, new(mockMenuRepository), new(mockOrderNotifier), time.Now(), false)
	_, err := uc.GetOrderByID(context.Background(), studentSession(), "order-9")

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestUpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name       string
		current    models.OrderStatus
		next       string
		expectErr  bool
		statusCode int
	}{
		{name: "placed to accepted", current: models.OrderStatusPlaced, next: "accepted"},
		{name: "preparing to out for delivery", current: models.OrderStatusPreparing, next: "out_for_delivery"},
		{name: "placed straight to delivered", current: models.OrderStatusPlaced, next: "delivered", expectErr: true, statusCode: constvars.StatusUnprocessableEntity},
		{name: "delivered is terminal", current: models.OrderStatusDelivered, next: "cancelled", expectErr: true, statusCode: constvars.StatusUnprocessableEntity},
		{name: "unknown status", current: models.OrderStatusPlaced, next: "refunded", expectErr: true, statusCode: constvars.StatusUnprocessableEntity},
	}

	adminSession := &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := new(mockOrderRepository)
			notifier := new(mockOrderNotifier)
			orderRepo.On("FindByID", mock.Anything, "order-1").Return(&models.Order{
				ID:     "order-1",
				UserID: "user-1",
				Status: tc.current,
			}, nil)
			orderRepo.On("UpdateOrder", mock.Anything, mock.Anything).Return(nil)
			notifier.On("NotifyOrderStatusChanged", mock.Anything, mock.Anything, tc.current).Return(nil)

			uc := newTestOrderUsecase(orderRepo, new(mockMenuRepository), notifier, time.Now(), false)
			result, err := uc.UpdateOrderStatus(context.Background(), adminSession, "order-1", &requests.UpdateOrderStatus{Status: tc.next})

			if tc.expectErr {
				assert.Error(t, err)
				customErr, ok := err.(*exceptions.CustomError)
				assert.True(t, ok)
				assert.Equal(t, tc.statusCode, customErr.StatusCode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.next, result.Status)
		})
	}
}

func TestCancelOrderByOwner(t *testing.T) {
	orderRepo := new(mockOrderRepository)
	notifier := new(mockOrderNotifier)
	orderRepo.On("FindByID", mock.Anything, "order-1").Return(&models.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: models.OrderStatusPlaced,
	}, nil)
	orderRepo.On("UpdateOrder", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyOrderStatusChanged", mock.Anything, mock.Anything, models.OrderStatusPlaced).Return(nil)

	uc := newTestOrderUsecase(orderRepo, new(mockMenuRepository), notifier, time.Now(), false)
	result, err := uc.CancelOrder(context.Background(), studentSession(), "order-1")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
}
