package contracts

import (
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}

type UserUsecase interface {
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
