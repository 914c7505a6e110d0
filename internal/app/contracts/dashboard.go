package contracts

import (
	"chaipoint-service/internal/pkg/dto/responses"
	"context"
)

type DashboardUsecase interface {
	GetLiveFeed(ctx context.Context, dateInput string) (*responses.LiveFeed, error)
	GetSummary(ctx context.Context, dateInput string) (*responses.DashboardSummary, error)
}
