package entities

import "time"

// Order — внешняя сущность из order-service. Движок расписаний хранит
// только ссылку OrderRef и никогда не разыменовывает ее сам;
// Number и StoreName запрашиваются у коллаборатора для отображения.
type Order struct {
	Ref       string
	Number    string
	StoreName string
	Status    OrderStatusType
	CreatedAt time.Time
}

// OrderModify — payload события order.status.changed.
type OrderModify struct {
	Ref    *string
	Status *OrderStatusType
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}
