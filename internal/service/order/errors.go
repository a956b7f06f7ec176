package order

import "errors"

var (
	// ErrStatusMismatch — статус в событии разошелся с актуальным в order-service.
	ErrStatusMismatch = errors.New("order status mismatch between event and order-service")
	// ErrUndefinedStatus — статус без обработчика, событие пропускается.
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrOrderNotFound   = errors.New("order not found")
)
