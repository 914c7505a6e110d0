package middlewares

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return int64(args.Int(0)), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func newThrottleMiddlewares(redisRepo *mockRedisRepository, budget int) *Middlewares {
	return &Middlewares{
		Log:             zap.NewNop(),
		RedisRepository: redisRepo,
		InternalConfig: &config.InternalConfig{
			Ordering: config.Ordering{PlaceOrderRatePerMin: budget},
		},
	}
}

func throttledRequest(session *models.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	if session != nil {
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		req = req.WithContext(ctx)
	}
	return req
}

func TestThrottleOrdersAllowsWithinBudget(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, "throttle:orders:student-1", 0, time.Minute).Return(true, nil)
	redisRepo.On("Increment", mock.Anything, "throttle:orders:student-1").Return(1, nil)

	mw := newThrottleMiddlewares(redisRepo, 5)

	var reached bool
	handler := mw.ThrottleOrders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusCreated)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, throttledRequest(&models.Session{UserID: "student-1"}))

	assert.True(t, reached)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	redisRepo.AssertExpectations(t)
}

func TestThrottleOrdersRejectsOverBudget(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, "throttle:orders:student-1", 0, time.Minute).Return(false, nil)
	redisRepo.On("Increment", mock.Anything, "throttle:orders:student-1").Return(6, nil)

	mw := newThrottleMiddlewares(redisRepo, 5)

	handler := mw.ThrottleOrders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run once the budget is exhausted")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, throttledRequest(&models.Session{UserID: "student-1"}))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "too many orders")
}

func TestThrottleOrdersRequiresSession(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	mw := newThrottleMiddlewares(redisRepo, 5)

	handler := mw.ThrottleOrders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, throttledRequest(nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	redisRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}
