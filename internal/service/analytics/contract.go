//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=analytics_test
package analytics

import (
	"context"

	"scheduler/internal/entities"
)

type ScheduleReader interface {
	List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error)
}
