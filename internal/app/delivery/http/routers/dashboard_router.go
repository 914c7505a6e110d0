package routers

import (
	"chaipoint-service/internal/app/delivery/http/controllers"
	"chaipoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/feed", dashboardController.GetLiveFeed)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/summary", dashboardController.GetSummary)
}
