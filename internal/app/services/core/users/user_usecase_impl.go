package users

import (
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/requests"
	"chaipoint-service/internal/pkg/dto/responses"
	"chaipoint-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

// UpdateProfile changes the delivery address fields and name. The session
// payload is rewritten as well, because order placement reads the hostel
// block from the session rather than the user document.
func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.HostelBlock != nil {
		block := models.HostelBlock(*request.HostelBlock)
		if !block.Valid() {
			return nil, exceptions.ErrUnknownHostelBlock(fmt.Errorf("hostel block %q is not deliverable", *request.HostelBlock))
		}
		user.HostelBlock = block
	}
	if request.RoomNumber != nil {
		user.RoomNumber = *request.RoomNumber
	}
	user.UpdatedAt = time.Now()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.FullName = user.FullName
	session.HostelBlock = user.HostelBlock
	session.RoomNumber = user.RoomNumber
	err = uc.SessionService.UpdateSession(ctx, session)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error refreshing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.UserProfile{
		UserID:      user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		Role:        user.Role,
		HostelBlock: string(user.HostelBlock),
		RoomNumber:  user.RoomNumber,
	}, nil
}
