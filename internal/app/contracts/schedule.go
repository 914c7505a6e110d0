package contracts

import (
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
)

type ScheduleUsecase interface {
	GetSlots(ctx context.Context) (*responses.SlotList, error)
	GetWorkingDay(ctx context.Context, dateInput string) (*responses.WorkingDay, error)
}
