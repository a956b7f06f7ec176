package order

import (
	"context"
	"errors"
	"fmt"

	"scheduler/internal/entities"
)

type Service struct {
	orderGateway  OrderGateway
	statusFactory HandlerFactory
}

func New(orderGateway OrderGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		orderGateway:  orderGateway,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Ref == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order ref and status are required")
	}

	// Верификация через order-service
	order, err := s.orderGateway.GetOrderByRef(ctx, *orderModify.Ref)
	if err != nil {
		return nil, fmt.Errorf("get order from order-service: %w", err)
	}

	if order.Status != *orderModify.Status {
		return order, fmt.Errorf("%w: event %s, order-service %s", ErrStatusMismatch, *orderModify.Status, order.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.Ref); err != nil {
		return nil, err
	}

	return order, nil
}
