//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_test
package capacity

import (
	"context"
	"time"

	"scheduler/internal/entities"
)

type Repository interface {
	GetOrCreateWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, defaultMax int32) (*entities.CapacityWindow, error)

	// TryReserve атомарно инкрементирует committed, если окно не заполнено.
	// Возвращает false без ошибки, когда committed == max_capacity.
	TryReserve(ctx context.Context, windowID int64) (bool, error)
	ReleaseWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time) error

	GetWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time) (*entities.CapacityWindow, error)
	ListWindows(ctx context.Context, from, to time.Time, slot entities.TimeSlot) ([]entities.CapacityWindow, error)
	UpsertMaxCapacity(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, maxCapacity int32) (*entities.CapacityWindow, error)
}

type ScheduleReader interface {
	ListActiveByDistributorOnDate(ctx context.Context, distributorRef string, date time.Time) ([]entities.DeliverySchedule, error)
}
