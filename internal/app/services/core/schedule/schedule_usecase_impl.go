package schedule

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/responses"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	InternalConfig *config.InternalConfig
	Location       *time.Location
	Log            *zap.Logger
	nowFunc        func() time.Time
}

func NewScheduleUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ScheduleUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("scheduleUsecase falling back to server local time",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.Local
	}

	return &scheduleUsecase{
		InternalConfig: internalConfig,
		Location:       location,
		Log:            logger,
		nowFunc:        time.Now,
	}
}

func (uc *scheduleUsecase) GetSlots(ctx context.Context) (*responses.SlotList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.nowFunc().In(uc.Location)
	state := StateAt(now)
	window := windowForState(now, state)
	slots := EnumerateSlots(now, uc.InternalConfig.Ordering.EnableAllSlots)

	result := &responses.SlotList{
		WindowState: state.String(),
		WindowLabel: window.Label(),
		Slots:       make([]responses.Slot, 0, len(slots)),
	}
	for _, slot := range slots {
		result.Slots = append(result.Slots, responses.Slot{
			SlotTime:   slot.StartTime.Format(constvars.SlotTimeLayout),
			Display:    slot.Display,
			IsBookable: slot.IsBookable,
			IsPast:     slot.IsPast,
		})
	}
	return result, nil
}

func (uc *scheduleUsecase) GetWorkingDay(ctx context.Context, dateInput string) (*responses.WorkingDay, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetWorkingDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", dateInput),
	)

	now := uc.nowFunc().In(uc.Location)
	window := CurrentWorkingDay(now)
	state := StateAt(now)
	if dateInput != "" {
		picked, err := DateInputToWorkingDay(dateInput)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		window = picked
		// A picked day is classified against its own window, not today's.
		switch {
		case now.Before(window.Start):
			state = BeforeWindow
		case now.Before(window.End.Add(SlotInterval)):
			state = ActiveWindow
		default:
			state = AfterWindow
		}
	}

	return &responses.WorkingDay{
		Date:        WorkingDayToDateInput(window),
		WindowStart: window.Start.Format(constvars.SlotTimeLayout),
		WindowEnd:   window.End.Format(constvars.SlotTimeLayout),
		WindowLabel: window.Label(),
		WindowState: state.String(),
	}, nil
}
