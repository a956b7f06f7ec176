//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"scheduler/internal/entities"
)

type OrderGateway interface {
	GetOrderByRef(ctx context.Context, orderRef string) (*entities.Order, error)
}

type ScheduleService interface {
	CancelByOrderRef(ctx context.Context, orderRef, reason string) (*entities.DeliverySchedule, error)
	CompleteByOrderRef(ctx context.Context, orderRef string) (*entities.DeliverySchedule, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderRef string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
