package tracking

import "time"

type RecordDB struct {
	ID         int64
	ScheduleID int64
	Status     string
	Lat        *float64
	Lng        *float64
	RecordedAt time.Time
}
