package schedule

import (
	"chaipoint-service/internal/app/models"
	"sort"
	"time"
)

// GroupOrdersBySlotAndBlock merges orders onto the full slot grid of the
// operative window. Every returned entry carries all four hostel blocks,
// empty or not, so the admin feed renders a stable grid even with zero
// orders. Orders with an unrecognized block are dropped silently; bad data
// must not break the feed. The result is sorted upcoming-first: slots still
// ahead of now in ascending order, then past slots in ascending order.
func GroupOrdersBySlotAndBlock(orders []models.Order, now time.Time, bypass bool) []GroupedSlot {
	slots := EnumerateSlots(now, bypass)

	buckets := make(map[int64][]models.Order)
	for _, order := range orders {
		key := SlotKey(order.SlotTime).Unix()
		buckets[key] = append(buckets[key], order)
	}

	grouped := make([]GroupedSlot, 0, len(slots))
	for _, slot := range slots {
		entry := GroupedSlot{
			SlotTime: slot.StartTime,
			Slot:     slot,
			Blocks:   make(map[models.HostelBlock][]models.Order, len(models.HostelBlocks)),
		}
		for _, block := range models.HostelBlocks {
			entry.Blocks[block] = []models.Order{}
		}
		for _, order := range buckets[slot.StartTime.Unix()] {
			if !order.HostelBlock.Valid() {
				continue
			}
			entry.Blocks[order.HostelBlock] = append(entry.Blocks[order.HostelBlock], order)
		}
		grouped = append(grouped, entry)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		if grouped[i].Slot.IsPast != grouped[j].Slot.IsPast {
			return !grouped[i].Slot.IsPast
		}
		return grouped[i].SlotTime.Before(grouped[j].SlotTime)
	})
	return grouped
}
