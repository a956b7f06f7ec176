//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_confirm_post_test
package schedule_confirm_post

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
	Confirm(ctx context.Context, token, notes string) (*entities.DeliverySchedule, error)
}
