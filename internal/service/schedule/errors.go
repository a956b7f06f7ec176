package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderRef       = errors.New("invalid order ref")
	ErrInvalidDate           = errors.New("invalid scheduled date")
	ErrInvalidSlot           = errors.New("invalid time slot")
	ErrInvalidCustomRange    = errors.New("invalid custom time range")
	ErrInvalidDeliveryType   = errors.New("invalid delivery type")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidFee            = errors.New("invalid delivery fee")
	ErrInvalidDistributorRef = errors.New("invalid distributor ref")
	ErrInvalidCancelReason   = errors.New("invalid cancel reason")

	ErrScheduleNotFound       = errors.New("schedule not found")
	ErrOrderAlreadyScheduled  = errors.New("order already has an active schedule")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrDistributorRequired    = errors.New("distributor must be assigned first")
	ErrDeliveryWindowNotEnded = errors.New("delivery window has not elapsed yet")

	// ErrUnavailable — транзиентный сбой хранилища, не исчезнувший после
	// ограниченного числа повторов.
	ErrUnavailable = errors.New("storage temporarily unavailable")
)
