//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_post_test
package schedule_post

import (
	"context"

	"scheduler/internal/entities"
	"scheduler/internal/service/schedule"
	"scheduler/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, req schedule.CreateRequest) (*entities.DeliverySchedule, error)
}

type TokenService interface {
	ConfirmationLink(token string) string
}
