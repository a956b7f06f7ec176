package capacity

import "time"

type WindowDB struct {
	ID          int64
	Date        time.Time
	Slot        string
	SlotStart   time.Time
	SlotEnd     time.Time
	MaxCapacity int32
	Committed   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
