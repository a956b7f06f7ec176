//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"scheduler/internal/entities"
	"scheduler/pkg/logger"
)

type Repository interface {
	Append(ctx context.Context, record entities.TrackingRecord) (*entities.TrackingRecord, error)
	LatestBySchedules(ctx context.Context, scheduleIDs []int64) (map[int64]entities.TrackingRecord, error)
	ListBySchedule(ctx context.Context, scheduleID int64) ([]entities.TrackingRecord, error)
}

type ScheduleReader interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliverySchedule, error)
	List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error)
}

// Cache хранит последний пинг расписания; недоступность кеша не
// блокирует запись трекинга.
type Cache interface {
	SetLatest(ctx context.Context, record entities.TrackingRecord) error
	GetLatest(ctx context.Context, scheduleID int64) (*entities.TrackingRecord, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
