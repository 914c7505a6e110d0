package schedule

import (
	"testing"
	"time"

	"chaipoint-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(slotTime time.Time, block models.HostelBlock) models.Order {
	return models.Order{
		CustomerName: "test",
		HostelBlock:  block,
		Status:       models.OrderStatusPlaced,
		SlotTime:     slotTime,
	}
}

func countGroupedOrders(grouped []GroupedSlot) int {
	total := 0
	for _, entry := range grouped {
		for _, orders := range entry.Blocks {
			total += len(orders)
		}
	}
	return total
}

func TestGroupOrdersEmptyInput(t *testing.T) {
	now := localDate(2024, time.December, 10, 1, 0)
	grouped := GroupOrdersBySlotAndBlock(nil, now, false)

	require.Len(t, grouped, SlotsPerWindow)
	for _, entry := range grouped {
		require.Len(t, entry.Blocks, len(models.HostelBlocks))
		for _, block := range models.HostelBlocks {
			orders, ok := entry.Blocks[block]
			assert.True(t, ok, "block %s missing", block)
			assert.Empty(t, orders)
		}
	}
}

func TestGroupOrdersConservation(t *testing.T) {
	now := localDate(2024, time.December, 10, 1, 0)
	window := CurrentWorkingDay(now)

	orders := []models.Order{
		orderAt(window.Start, models.HostelBlockA),
		orderAt(window.Start.Add(SlotInterval), models.HostelBlockB),
		orderAt(window.Start.Add(4*SlotInterval), models.HostelBlockB),
		orderAt(window.Start.Add(8*SlotInterval), models.HostelBlockD),
	}

	grouped := GroupOrdersBySlotAndBlock(orders, now, false)
	assert.Equal(t, len(orders), countGroupedOrders(grouped))
}

func TestGroupOrdersUnknownBlockDropped(t *testing.T) {
	now := localDate(2024, time.December, 10, 1, 0)
	window := CurrentWorkingDay(now)

	orders := []models.Order{
		orderAt(window.Start.Add(2*SlotInterval), models.HostelBlockC),
		orderAt(window.Start.Add(2*SlotInterval), models.HostelBlock("Z")),
		orderAt(window.Start.Add(3*SlotInterval), models.HostelBlock("")),
	}

	grouped := GroupOrdersBySlotAndBlock(orders, now, false)
	assert.Equal(t, 1, countGroupedOrders(grouped), "unrecognized blocks are excluded, not errored")
}

func TestGroupOrdersNormalizesDriftedSlotTimes(t *testing.T) {
	now := localDate(2024, time.December, 10, 1, 0)
	window := CurrentWorkingDay(now)

	// Stored timestamps drifted by seconds and minutes still land in the
	// slot whose half-hour they fall into.
	drifted := []models.Order{
		orderAt(window.Start.Add(2*SlotInterval+7*time.Minute), models.HostelBlockA),
		orderAt(window.Start.Add(2*SlotInterval+29*time.Minute+59*time.Second), models.HostelBlockB),
	}

	grouped := GroupOrdersBySlotAndBlock(drifted, now, false)

	slotTime := window.Start.Add(2 * SlotInterval)
	for _, entry := range grouped {
		if entry.SlotTime.Equal(slotTime) {
			assert.Len(t, entry.Blocks[models.HostelBlockA], 1)
			assert.Len(t, entry.Blocks[models.HostelBlockB], 1)
			return
		}
	}
	t.Fatalf("slot %s not found in grouped output", slotTime)
}

func TestGroupOrdersSortPolicy(t *testing.T) {
	// 01:00 inside the active window: some slots are past, some upcoming.
	now := localDate(2024, time.December, 10, 1, 0)
	grouped := GroupOrdersBySlotAndBlock(nil, now, false)

	require.Len(t, grouped, SlotsPerWindow)

	firstPast := len(grouped)
	for i, entry := range grouped {
		if entry.Slot.IsPast {
			firstPast = i
			break
		}
	}
	require.Less(t, firstPast, len(grouped), "expected past slots at 01:00")

	for i, entry := range grouped {
		if i < firstPast {
			assert.False(t, entry.Slot.IsPast, "index %d", i)
		} else {
			assert.True(t, entry.Slot.IsPast, "index %d", i)
		}
		if i > 0 && i != firstPast {
			assert.True(t, grouped[i-1].SlotTime.Before(entry.SlotTime),
				"ascending order broken inside bucket at index %d", i)
		}
	}
}

func TestGroupOrdersOutsideWindowIgnored(t *testing.T) {
	now := localDate(2024, time.December, 10, 1, 0)

	// An order scheduled last week matches no canonical slot and vanishes
	// from the feed without disturbing the 13-entry shape.
	stale := []models.Order{
		orderAt(localDate(2024, time.December, 3, 23, 30), models.HostelBlockA),
	}

	grouped := GroupOrdersBySlotAndBlock(stale, now, false)
	require.Len(t, grouped, SlotsPerWindow)
	assert.Zero(t, countGroupedOrders(grouped))
}
