package routers

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/delivery/http/controllers"
	"chaipoint-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, mw *middlewares.Middlewares, orderController *controllers.OrderController, internalConfig *config.InternalConfig) {
	placeOrderLimiter := middlewares.NewRateLimiter(
		internalConfig.Ordering.PlaceOrderRatePerMin,
		time.Minute,
		time.Duration(internalConfig.Ordering.PlaceOrderBlockInMin)*time.Minute,
	)

	router.With(mw.Authenticate, placeOrderLimiter.Limit, mw.ThrottleOrders).Post("/", orderController.PlaceOrder)
	router.With(mw.Authenticate).Get("/", orderController.ListOrdersBySession)
	router.With(mw.Authenticate).Get("/{orderID}", orderController.GetOrderByID)
	router.With(mw.Authenticate).Post("/{orderID}/cancel", orderController.CancelOrder)
	router.With(mw.Authenticate, mw.RequireAdmin).Patch("/{orderID}/status", orderController.UpdateOrderStatus)
}
