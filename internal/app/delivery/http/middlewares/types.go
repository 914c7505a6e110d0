package middlewares

import (
	"chaipoint-service/internal/app/config"
	"chaipoint-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionService  contracts.SessionService
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		SessionService:  sessionService,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
