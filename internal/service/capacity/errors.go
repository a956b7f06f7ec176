package capacity

import "errors"

var (
	ErrInvalidSlot      = errors.New("invalid time slot")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidCapacity  = errors.New("invalid capacity value")

	ErrCapacityExceeded       = errors.New("capacity exceeded")
	ErrTimeConflict           = errors.New("time conflict")
	ErrWindowNotFound         = errors.New("capacity window not found")
	ErrCapacityBelowCommitted = errors.New("max capacity below committed count")
)
