//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/service/capacity"
)

type Repository interface {
	Create(ctx context.Context, schedule entities.DeliverySchedule) (*entities.DeliverySchedule, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliverySchedule, error)
	GetActiveByOrderRef(ctx context.Context, orderRef string) (*entities.DeliverySchedule, error)

	// UpdateStatus применяет modify только если текущий статус равен from.
	// Ноль затронутых строк репозиторий возвращает как ErrScheduleNotFound.
	UpdateStatus(ctx context.Context, id int64, from entities.ScheduleStatus, modify entities.ScheduleModify) (*entities.DeliverySchedule, error)

	List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error)
	ListOverdue(ctx context.Context, deadline time.Time) ([]entities.DeliverySchedule, error)
}

type CapacityService interface {
	Reserve(ctx context.Context, req capacity.ReservationRequest) (*entities.Reservation, error)
	Release(ctx context.Context, reservation *entities.Reservation) error
	CheckDistributorConflict(ctx context.Context, distributorRef string, date, start, end time.Time, excludeScheduleID int64) error
}

type TokenIssuer interface {
	Issue() (string, error)
}

type TrackingAppender interface {
	AppendStatus(ctx context.Context, scheduleID int64, status entities.ScheduleStatus) error
}

type SlotTimeFactory interface {
	Bounds(date time.Time, slot entities.TimeSlot) (time.Time, time.Time)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
