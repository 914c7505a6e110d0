package routers

import (
	"chaipoint-service/internal/app/delivery/http/controllers"
	"chaipoint-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMenuRoutes(router chi.Router, middlewares *middlewares.Middlewares, menuController *controllers.MenuController) {
	router.Get("/", menuController.ListMenu)
	router.Get("/{menuItemID}", menuController.GetMenuItemByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", menuController.CreateMenuItem)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{menuItemID}", menuController.UpdateMenuItem)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{menuItemID}", menuController.DeleteMenuItem)
}
