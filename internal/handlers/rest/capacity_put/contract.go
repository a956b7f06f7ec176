//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_put_test
package capacity_put

import (
	"context"
	"time"

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
	SetMaxCapacity(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, maxCapacity int32) (*entities.CapacityWindow, error)
}

type SlotTimeFactory interface {
	Bounds(date time.Time, slot entities.TimeSlot) (time.Time, time.Time)
}
