package order_handle

import (
	"context"
	"fmt"

	"scheduler/internal/entities"
	"scheduler/internal/service/order"
)

const cancelledByOrderReason = "order cancelled in order-service"

type StatusHandlerFactory struct {
	scheduleService order.ScheduleService
}

func NewStatusHandlerFactory(scheduleService order.ScheduleService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		scheduleService: scheduleService,
	}
}

// GetHandler выбирает реакцию движка расписаний на статус заказа.
// created не обрабатывается: расписание создается по REST, а не по
// событию заказа.
func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderRef string) error {
	_, err := f.scheduleService.CancelByOrderRef(ctx, orderRef, cancelledByOrderReason)
	if err != nil {
		return fmt.Errorf("cancel schedule for cancelled order %s: %w", orderRef, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderRef string) error {
	_, err := f.scheduleService.CompleteByOrderRef(ctx, orderRef)
	if err != nil {
		return fmt.Errorf("complete schedule for completed order %s: %w", orderRef, err)
	}
	return nil
}
