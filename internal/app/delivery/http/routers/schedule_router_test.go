package routers

import (
	"chaipoint-service/internal/app/delivery/http/controllers"
	"chaipoint-service/internal/app/delivery/http/middlewares"
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) GetSlots(ctx context.Context) (*responses.SlotList, error) {
	args := m.Called(ctx)
	if result, ok := args.Get(0).(*responses.SlotList); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockScheduleUsecase) GetWorkingDay(ctx context.Context, dateInput string) (*responses.WorkingDay, error) {
	args := m.Called(ctx, dateInput)
	if result, ok := args.Get(0).(*responses.WorkingDay); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestScheduleRouter_SlotsEndpoint(t *testing.T) {
	logger := zap.NewNop()

	mockScheduleUsecase := new(MockScheduleUsecase)
	scheduleController := controllers.NewScheduleController(logger, mockScheduleUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
	}

	router := chi.NewRouter()
	attachScheduleRoutes(router, middlewareInstance, scheduleController)

	t.Run("GetSlots returns the slot list", func(t *testing.T) {
		mockScheduleUsecase.On("GetSlots", mock.Anything).Return(&responses.SlotList{
			WindowState: "before_window",
			WindowLabel: "Dec 9, 11pm - Dec 10, 5am",
			Slots: []responses.Slot{
				{SlotTime: "2024-12-09T23:00:00+05:30", Display: "11:00 PM", IsBookable: true},
			},
		}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, 200, rec.Code)

		var body responses.ResponseDTO
		err := json.Unmarshal(rec.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.True(t, body.Success)

		data, ok := body.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "before_window", data["window_state"])
	})

	t.Run("GetWorkingDay returns the active window", func(t *testing.T) {
		mockScheduleUsecase.On("GetWorkingDay", mock.Anything, "").Return(&responses.WorkingDay{
			Date:        "2024-12-09",
			WindowLabel: "Dec 9, 11pm - Dec 10, 5am",
			WindowState: "active_window",
		}, nil)

		req := httptest.NewRequest("GET", "/working-day", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, 200, rec.Code)

		var body responses.ResponseDTO
		err := json.Unmarshal(rec.Body.Bytes(), &body)
		assert.NoError(t, err)
		data, ok := body.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "2024-12-09", data["date"])
	})

	t.Run("GetWorkingDay forwards the picked date", func(t *testing.T) {
		mockScheduleUsecase.On("GetWorkingDay", mock.Anything, "2024-12-01").Return(&responses.WorkingDay{
			Date: "2024-12-01",
		}, nil)

		req := httptest.NewRequest("GET", "/working-day?date=2024-12-01", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, 200, rec.Code)
		mockScheduleUsecase.AssertCalled(t, "GetWorkingDay", mock.Anything, "2024-12-01")
	})
}
