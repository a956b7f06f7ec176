package entities

import "time"

// TrackingRecord — запись append-only журнала перемещений. Никогда не
// мутируется после вставки.
type TrackingRecord struct {
	ID         int64
	ScheduleID int64
	Status     ScheduleStatus
	Lat        *float64
	Lng        *float64
	RecordedAt time.Time
}

// LiveEntry — расписание с последним пингом для live-выдачи.
// Stale выставляется, когда доставка в пути, а свежих пингов нет;
// такие записи показываются, но не фейлятся автоматически.
type LiveEntry struct {
	Schedule DeliverySchedule
	Latest   *TrackingRecord
	Stale    bool
}
