package dashboard

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/app/services/core/schedule"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/responses"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	OrderRepository contracts.OrderRepository
	InternalConfig  *config.InternalConfig
	Location        *time.Location
	Log             *zap.Logger
	nowFunc         func() time.Time
}

func NewDashboardUsecase(
	orderRepository contracts.OrderRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("dashboardUsecase falling back to server local time",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.Local
	}

	return &dashboardUsecase{
		OrderRepository: orderRepository,
		InternalConfig:  internalConfig,
		Location:        location,
		Log:             logger,
		nowFunc:         time.Now,
	}
}

// resolveWindow maps an optional yyyy-mm-dd date picker value to a delivery
// window, defaulting to the current working day.
func (uc *dashboardUsecase) resolveWindow(dateInput string) (schedule.DeliveryWindow, error) {
	if dateInput == "" {
		return schedule.CurrentWorkingDay(uc.nowFunc().In(uc.Location)), nil
	}
	window, err := schedule.DateInputToWorkingDay(dateInput)
	if err != nil {
		return schedule.DeliveryWindow{}, exceptions.ErrCannotParseDate(err)
	}
	return window, nil
}

func (uc *dashboardUsecase) fetchWindowOrders(ctx context.Context, window schedule.DeliveryWindow) ([]models.Order, error) {
	// The window's closing slot at 05:00 is itself bookable, so the range
	// query runs one interval past End.
	return uc.OrderRepository.FindBySlotTimeRange(ctx, window.Start, window.End.Add(schedule.SlotInterval))
}

func (uc *dashboardUsecase) GetLiveFeed(ctx context.Context, dateInput string) (*responses.LiveFeed, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetLiveFeed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", dateInput),
	)

	window, err := uc.resolveWindow(dateInput)
	if err != nil {
		return nil, err
	}

	orders, err := uc.fetchWindowOrders(ctx, window)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetLiveFeed error fetching orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.nowFunc().In(uc.Location)
	grouped := schedule.GroupOrdersBySlotAndBlock(orders, now, uc.InternalConfig.Ordering.EnableAllSlots)

	feed := &responses.LiveFeed{
		WorkingDay:  schedule.WorkingDayToDateInput(window),
		WindowLabel: window.Label(),
		Slots:       make([]responses.FeedSlot, 0, len(grouped)),
	}
	for _, entry := range grouped {
		feedSlot := responses.FeedSlot{
			SlotTime:    entry.SlotTime.Format(constvars.SlotTimeLayout),
			SlotDisplay: entry.Slot.Display,
			IsPast:      entry.Slot.IsPast,
			Blocks:      make([]responses.FeedBlock, 0, len(models.HostelBlocks)),
		}
		for _, block := range models.HostelBlocks {
			feedBlock := responses.FeedBlock{
				HostelBlock: string(block),
				Orders:      make([]responses.Order, 0, len(entry.Blocks[block])),
			}
			for i := range entry.Blocks[block] {
				feedBlock.Orders = append(feedBlock.Orders, *buildFeedOrder(&entry.Blocks[block][i]))
				feedSlot.OrderCount++
			}
			feedSlot.Blocks = append(feedSlot.Blocks, feedBlock)
		}
		feed.Slots = append(feed.Slots, feedSlot)
	}
	return feed, nil
}

func (uc *dashboardUsecase) GetSummary(ctx context.Context, dateInput string) (*responses.DashboardSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", dateInput),
	)

	window, err := uc.resolveWindow(dateInput)
	if err != nil {
		return nil, err
	}

	orders, err := uc.fetchWindowOrders(ctx, window)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetSummary error fetching orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := &responses.DashboardSummary{
		WorkingDay:      schedule.WorkingDayToDateInput(window),
		WindowLabel:     window.Label(),
		OrdersByStatus:  make(map[string]int),
		OrdersByBlock:   make(map[string]int),
		RevenueByStatus: make(map[string]float64),
	}

	slotCounts := make(map[string]int)
	for i := range orders {
		order := &orders[i]
		summary.TotalOrders++
		summary.OrdersByStatus[string(order.Status)]++
		summary.RevenueByStatus[string(order.Status)] += order.TotalAmount
		if order.HostelBlock.Valid() {
			summary.OrdersByBlock[string(order.HostelBlock)]++
		}
		if order.Status != models.OrderStatusCancelled {
			summary.TotalRevenue += order.TotalAmount
		}
		slotCounts[schedule.SlotDisplay(schedule.SlotKey(order.SlotTime))]++
	}

	busiest := make([]responses.SlotSummary, 0, len(slotCounts))
	for display, count := range slotCounts {
		busiest = append(busiest, responses.SlotSummary{SlotDisplay: display, OrderCount: count})
	}
	sort.Slice(busiest, func(i, j int) bool {
		if busiest[i].OrderCount != busiest[j].OrderCount {
			return busiest[i].OrderCount > busiest[j].OrderCount
		}
		return busiest[i].SlotDisplay < busiest[j].SlotDisplay
	})
	if len(busiest) > 3 {
		busiest = busiest[:3]
	}
	summary.BusiestSlots = busiest

	return summary, nil
}

func buildFeedOrder(order *models.Order) *responses.Order {
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
