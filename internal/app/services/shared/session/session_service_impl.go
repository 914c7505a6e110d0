package session

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"
	"chaipoint-service/internal/app/models"
	"chaipoint-service/internal/pkg/exceptions"
	"chaipoint-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	expTimeInHour := svc.InternalConfig.Ordering.SessionExpTimeInHour
	session.SessionID = uuid.New().String()
	session.ExpiresAt = time.Now().Add(time.Duration(expTimeInHour) * time.Hour)

	err := svc.RedisRepository.Set(ctx, session.SessionID, session, time.Duration(expTimeInHour)*time.Hour)
	if err != nil {
		return "", exceptions.ErrRedisStoreSession(err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.InternalConfig.JWT.Secret, expTimeInHour)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, svc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// UpdateSession rewrites the stored payload in place, keeping the session ID
// and the remaining lifetime so issued tokens stay valid.
func (svc *sessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrTokenInvalidOrExpired(nil)
	}

	err := svc.RedisRepository.Set(ctx, session.SessionID, session, ttl)
	if err != nil {
		return exceptions.ErrRedisStoreSession(err)
	}
	return nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
