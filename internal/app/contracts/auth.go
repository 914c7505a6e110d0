package contracts

import (
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	RegisterStudent(ctx context.Context, request *requests.RegisterStudent) (*responses.RegisterStudent, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
