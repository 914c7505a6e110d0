package middlewares

import (
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/exceptions"
	"chaipoint-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"
)

const orderThrottleWindow = time.Minute

// ThrottleOrders caps order placement per student in a fixed one-minute
// window backed by redis, so the budget holds across instances while the
// in-memory IP limiter only shields a single process. Must run after
// Authenticate.
func (m *Middlewares) ThrottleOrders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok || session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
			return
		}

		key := fmt.Sprintf("throttle:orders:%s", session.UserID)

		// SETNX seeds the counter with its expiry; INCR never touches the
		// TTL, so the window stays fixed rather than sliding.
		if _, err := m.RedisRepository.TrySetNX(r.Context(), key, 0, orderThrottleWindow); err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		count, err := m.RedisRepository.Increment(r.Context(), key)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if count > int64(m.InternalConfig.Ordering.PlaceOrderRatePerMin) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrOrderRateLimited(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
