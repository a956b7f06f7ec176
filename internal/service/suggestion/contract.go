//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suggestion_test
package suggestion

import (
	"context"
	"time"

	"scheduler/internal/entities"
)

type CapacityReader interface {
	QueryWindows(ctx context.Context, from, to time.Time, slot entities.TimeSlot) ([]entities.CapacityWindow, error)
}

type SlotTimeFactory interface {
	Bounds(date time.Time, slot entities.TimeSlot) (time.Time, time.Time)
}
