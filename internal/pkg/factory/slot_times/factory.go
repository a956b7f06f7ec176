package slot_times

import (
	"time"

	"scheduler/internal/entities"
)

// Границы стандартных слотов, часы локального операционного дня (UTC).
const (
	morningStartHour   = 9
	morningEndHour     = 12
	afternoonStartHour = 12
	afternoonEndHour   = 16
	eveningStartHour   = 16
	eveningEndHour     = 20
)

type SlotTimeFactory struct{}

func New() *SlotTimeFactory {
	return &SlotTimeFactory{}
}

// Bounds возвращает границы стандартного слота на заданную дату.
// Для SlotCustom границы задает вызывающая сторона, фабрика возвращает
// нулевые значения.
func (f *SlotTimeFactory) Bounds(date time.Time, slot entities.TimeSlot) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch slot {
	case entities.SlotMorning:
		return day.Add(morningStartHour * time.Hour), day.Add(morningEndHour * time.Hour)
	case entities.SlotAfternoon:
		return day.Add(afternoonStartHour * time.Hour), day.Add(afternoonEndHour * time.Hour)
	case entities.SlotEvening:
		return day.Add(eveningStartHour * time.Hour), day.Add(eveningEndHour * time.Hour)
	default:
		return time.Time{}, time.Time{}
	}
}
