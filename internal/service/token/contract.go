//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_test
package token

import (
	"context"

	"scheduler/internal/entities"
)

type Repository interface {
	GetByToken(ctx context.Context, token string) (*entities.DeliverySchedule, error)
}

type ScheduleConfirmer interface {
	Confirm(ctx context.Context, id int64, notes string) (*entities.DeliverySchedule, error)
	GetSchedule(ctx context.Context, id int64) (*entities.DeliverySchedule, error)
}
