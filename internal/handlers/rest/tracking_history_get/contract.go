//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_history_get_test
package tracking_history_get

import (
	"context"

	"scheduler/internal/entities"
	"scheduler/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	History(ctx context.Context, scheduleID int64) ([]entities.TrackingRecord, error)
}
