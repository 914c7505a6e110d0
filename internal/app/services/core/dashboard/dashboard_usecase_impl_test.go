package dashboard

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/models"
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

func newTestDashboardUsecase(orderRepo *mockOrderRepository, now time.Time) *dashboardUsecase {
	return &dashboardUsecase{
		OrderRepository: orderRepo,
		InternalConfig:  &config.InternalConfig{},
		Location:        time.Local,
		Log:             zap.NewNop(),
		nowFunc:         func() time.Time { return now },
	}
}

func windowOrder(id string, block models.HostelBlock, slotTime time.Time, status models.OrderStatus, amount float64) models.Order {
	return models.Order{
		ID:          id,
		UserID:      "user-" + id,
		HostelBlock: block,
		RoomNumber:  "101",
		Status:      status,
		SlotTime:    slotTime,
		TotalAmount: amount,
	}
}

func TestGetLiveFeedGrid(t *testing.T) {
	// Midnight-crossing time: working day anchors on Dec 9.
	now := time.Date(2024, time.December, 10, 1, 0, 0, 0, time.Local)
	slotMidnight := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.Local)
	slotTwoAM := time.Date(2024, time.December, 10, 2, 0, 0, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	orderRepo.On("FindBySlotTimeRange", mock.Anything, mock.Anything, mock.Anything).Return([]models.Order{
		windowOrder("1", models.HostelBlockA, slotMidnight, models.OrderStatusDelivered, 60),
		windowOrder("2", models.HostelBlockA, slotTwoAM, models.OrderStatusPlaced, 40),
		windowOrder("3", models.HostelBlockC, slotTwoAM, models.OrderStatusPlaced, 25),
	}, nil)

	uc := newTestDashboardUsecase(orderRepo, now)
	feed, err := uc.GetLiveFeed(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, "2024-12-09", feed.WorkingDay)
	assert.Len(t, feed.Slots, 13)

	// Every slot row carries all four blocks regardless of orders.
	for _, slot := range feed.Slots {
		assert.Len(t, slot.Blocks, 4)
	}

	// Upcoming slots come first; 2:00 AM is the first upcoming slot at 1:00 AM.
	assert.Equal(t, "2:00 AM", feed.Slots[1].SlotDisplay)
	assert.Equal(t, 2, feed.Slots[1].OrderCount)
	assert.Equal(t, "A", feed.Slots[1].Blocks[0].HostelBlock)
	assert.Len(t, feed.Slots[1].Blocks[0].Orders, 1)
	assert.Len(t, feed.Slots[1].Blocks[2].Orders, 1)

	// The delivered midnight order lands in the past section.
	var midnightRow bool
	for _, slot := range feed.Slots {
		if slot.SlotDisplay == "12:00 AM" {
			midnightRow = true
			assert.True(t, slot.IsPast)
			assert.Equal(t, 1, slot.OrderCount)
		}
	}
	assert.True(t, midnightRow)
}

func TestGetLiveFeedExplicitDate(t *testing.T) {
	now := time.Date(2024, time.December, 15, 12, 0, 0, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	expectedStart := time.Date(2024, time.December, 9, 23, 0, 0, 0, time.Local)
	orderRepo.On("FindBySlotTimeRange", mock.Anything,
		mock.MatchedBy(func(start time.Time) bool { return start.Equal(expectedStart) }),
		mock.Anything,
	).Return([]models.Order{}, nil)

	uc := newTestDashboardUsecase(orderRepo, now)
	feed, err := uc.GetLiveFeed(context.Background(), "2024-12-09")

	assert.NoError(t, err)
	assert.Equal(t, "2024-12-09", feed.WorkingDay)
	orderRepo.AssertExpectations(t)
}

func TestGetLiveFeedInvalidDate(t *testing.T) {
	uc := newTestDashboardUsecase(new(mockOrderRepository), time.Now())
	_, err := uc.GetLiveFeed(context.Background(), "12/09/2024")
	assert.Error(t, err)
}

func TestGetSummary(t *testing.T) {
	now := time.Date(2024, time.December, 9, 23, 40, 0, 0, time.Local)
	slotMidnight := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.Local)
	slotOneAM := time.Date(2024, time.December, 10, 1, 0, 0, 0, time.Local)

	orderRepo := new(mockOrderRepository)
	orderRepo.On("FindBySlotTimeRange", mock.Anything, mock.Anything, mock.Anything).Return([]models.Order{
		windowOrder("1", models.HostelBlockA, slotMidnight, models.OrderStatusPlaced, 100),
		windowOrder("2", models.HostelBlockB, slotMidnight, models.OrderStatusPlaced, 50),
		windowOrder("3", models.HostelBlockA, slotOneAM, models.OrderStatusCancelled, 75),
	}, nil)

	uc := newTestDashboardUsecase(orderRepo, now)
	summary, err := uc.GetSummary(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalOrders)
	// Cancelled orders are excluded from revenue.
	assert.Equal(t, float64(150), summary.TotalRevenue)
	assert.Equal(t, 2, summary.OrdersByStatus["placed"])
	assert.Equal(t, 1, summary.OrdersByStatus["cancelled"])
	assert.Equal(t, 2, summary.OrdersByBlock["A"])
	assert.Equal(t, float64(75), summary.RevenueByStatus["cancelled"])
	assert.Equal(t, "12:00 AM", summary.BusiestSlots[0].SlotDisplay)
	assert.Equal(t, 2, summary.BusiestSlots[0].OrderCount)
}
