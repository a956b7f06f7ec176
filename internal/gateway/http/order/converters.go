package order

import "scheduler/internal/entities"

func toDomain(payload *orderPayload) *entities.Order {
	if payload == nil {
		return nil
	}

	return &entities.Order{
		Ref:       payload.Ref,
		Number:    payload.Number,
		StoreName: payload.StoreName,
		Status:    entities.OrderStatusType(payload.Status),
		CreatedAt: payload.CreatedAt,
	}
}
