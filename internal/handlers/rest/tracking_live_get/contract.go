//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_live_get_test
package tracking_live_get

import (
	"context"

	"scheduler/internal/entities"
	"scheduler/internal/service/tracking"
	"scheduler/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	LiveFeed(ctx context.Context, filter tracking.LiveFilter) ([]entities.LiveEntry, error)
}
