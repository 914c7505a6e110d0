package menu

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"chaipoint-service/internal/pkg/exceptions"
	"chaipoint-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const imageURLExpiry = 24 * time.Hour

type menuUsecase struct {
	MenuRepository contracts.MenuRepository
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig
	Log            *zap.Logger
}

func NewMenuUsecase(
	menuRepository contracts.MenuRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.MenuUsecase {
	return &menuUsecase{
		MenuRepository: menuRepository,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		Log:            logger,
	}
}

func (uc *menuUsecase) CreateMenuItem(ctx context.Context, session *models.Session, request *requests.CreateMenuItem) (*responses.MenuItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("menuUsecase.CreateMenuItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now()
	menuItem := &models.MenuItem{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Price:       request.Price,
		Available:   request.Available,
		TimeModel:   models.NewTimeModel(now),
	}

	menuItemID, err := uc.MenuRepository.CreateMenuItem(ctx, menuItem)
	if err != nil {
		uc.Log.Error("menuUsecase.CreateMenuItem error creating menu item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	menuItem.ID = menuItemID

	if request.Image != "" {
		imageURL, err := uc.uploadImage(ctx, menuItemID, request.Image)
		if err != nil {
			uc.Log.Error("menuUsecase.CreateMenuItem error uploading image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		menuItem.ImageURL = imageURL
		menuItem.UpdatedAt = time.Now()
		if err := uc.MenuRepository.UpdateMenuItem(ctx, menuItem); err != nil {
			return nil, err
		}
	}

	uc.Log.Info("menuUsecase.CreateMenuItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("menu_item_id", menuItemID),
	)
	return uc.buildMenuItemResponse(ctx, menuItem), nil
}

func (uc *menuUsecase) UpdateMenuItem(ctx context.Context, session *models.Session, menuItemID string, request *requests.UpdateMenuItem) (*responses.MenuItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("menuUsecase.UpdateMenuItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("menu_item_id", menuItemID),
	)

	menuItem, err := uc.MenuRepository.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, exceptions.ErrMenuItemNotFound(nil)
	}

	if request.Name != nil {
		menuItem.Name = *request.Name
	}
	if request.Description != nil {
		menuItem.Description = *request.Description
	}
	if request.Category != nil {
		menuItem.Category = *request.Category
	}
	if request.Price != nil {
		menuItem.Price = *request.Price
	}
	if request.Available != nil {
		menuItem.Available = *request.Available
	}
	if request.Image != nil && *request.Image != "" {
		imageURL, err := uc.uploadImage(ctx, menuItemID, *request.Image)
		if err != nil {
			uc.Log.Error("menuUsecase.UpdateMenuItem error uploading image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		menuItem.ImageURL = imageURL
	}

	menuItem.UpdatedAt = time.Now()
	if err := uc.MenuRepository.UpdateMenuItem(ctx, menuItem); err != nil {
		uc.Log.Error("menuUsecase.UpdateMenuItem error updating menu item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildMenuItemResponse(ctx, menuItem), nil
}

func (uc *menuUsecase) DeleteMenuItem(ctx context.Context, session *models.Session, menuItemID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("menuUsecase.DeleteMenuItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("menu_item_id", menuItemID),
	)

	menuItem, err := uc.MenuRepository.FindByID(ctx, menuItemID)
	if err != nil {
		return err
	}
	if menuItem == nil {
		return exceptions.ErrMenuItemNotFound(nil)
	}

	return uc.MenuRepository.DeleteByID(ctx, menuItemID)
}

func (uc *menuUsecase) GetMenuItemByID(ctx context.Context, menuItemID string) (*responses.MenuItem, error) {
	menuItem, err := uc.MenuRepository.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, exceptions.ErrMenuItemNotFound(nil)
	}
	return uc.buildMenuItemResponse(ctx, menuItem), nil
}

func (uc *menuUsecase) ListMenu(ctx context.Context, request *requests.ListMenu) ([]responses.MenuItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("menuUsecase.ListMenu called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	menuItems, err := uc.MenuRepository.FindAll(ctx, request.OnlyAvailable, request.Category)
	if err != nil {
		uc.Log.Error("menuUsecase.ListMenu error fetching menu",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.MenuItem, 0, len(menuItems))
	for i := range menuItems {
		result = append(result, *uc.buildMenuItemResponse(ctx, &menuItems[i]))
	}
	return result, nil
}

func (uc *menuUsecase) uploadImage(ctx context.Context, menuItemID, encodedImage string) (string, error) {
	imageData, contentType, extension, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return "", err
	}

	maxSizeInBytes := uc.InternalConfig.Ordering.MenuImageMaxSizeInMB * 1024 * 1024
	if int64(len(imageData)) > maxSizeInBytes {
		return "", exceptions.ErrImageValidation(fmt.Errorf("image exceeds %dMB", uc.InternalConfig.Ordering.MenuImageMaxSizeInMB))
	}

	objectName := utils.GenerateImageObjectName(menuItemID, extension)
	return uc.MinioStorage.UploadBase64Image(ctx, imageData, uc.DriverConfig.Minio.BucketName, objectName, contentType)
}

func (uc *menuUsecase) buildMenuItemResponse(ctx context.Context, menuItem *models.MenuItem) *responses.MenuItem {
	imageURL := ""
	if menuItem.ImageURL != "" {
		presigned, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, menuItem.ImageURL, imageURLExpiry)
		if err == nil {
			imageURL = presigned
		}
	}

	return &responses.MenuItem{
		MenuItemID:  menuItem.ID,
		Name:        menuItem.Name,
		Description: menuItem.Description,
		Category:    menuItem.Category,
		Price:       menuItem.Price,
		ImageURL:    imageURL,
		Available:   menuItem.Available,
	}
}
