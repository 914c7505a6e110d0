package contracts

import (
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
)

type MenuUsecase interface {
	CreateMenuItem(ctx context.Context, session *models.Session, request *requests.CreateMenuItem) (*responses.MenuItem, error)
	UpdateMenuItem(ctx context.Context, session *models.Session, menuItemID string, request *requests.UpdateMenuItem) (*responses.MenuItem, error)
	DeleteMenuItem(ctx context.Context, session *models.Session, menuItemID string) error
	GetMenuItemByID(ctx context.Context, menuItemID string) (*responses.MenuItem, error)
	ListMenu(ctx context.Context, request *requests.ListMenu) ([]responses.MenuItem, error)
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, menuItem *models.MenuItem) (menuItemID string, err error)
	FindByID(ctx context.Context, menuItemID string) (*models.MenuItem, error)
	FindAll(ctx context.Context, onlyAvailable bool, category string) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, menuItem *models.MenuItem) error
	DeleteByID(ctx context.Context, menuItemID string) error
}
