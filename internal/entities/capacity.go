package entities

import "time"

// CapacityWindow — бакет вместимости на дату и слот. Для кастомных
// интервалов ключом служат точные границы SlotStart/SlotEnd, в
// стандартные слоты они не сворачиваются.
type CapacityWindow struct {
	ID          int64
	Date        time.Time
	Slot        TimeSlot
	SlotStart   time.Time
	SlotEnd     time.Time
	MaxCapacity int32
	Committed   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (w *CapacityWindow) Available() int32 {
	if w.Committed >= w.MaxCapacity {
		return 0
	}
	return w.MaxCapacity - w.Committed
}

func (w *CapacityWindow) Full() bool {
	return w.Committed >= w.MaxCapacity
}

func (w *CapacityWindow) OccupancyRatio() float64 {
	if w.MaxCapacity <= 0 {
		return 1
	}
	return float64(w.Committed) / float64(w.MaxCapacity)
}

// Reservation — предварительный инкремент счетчика окна. Вызывающая
// сторона обязана либо закоммитить его (сохранив расписание в той же
// транзакции), либо освободить через Release. Повторный Release — no-op.
type Reservation struct {
	WindowID  int64
	Date      time.Time
	Slot      TimeSlot
	SlotStart time.Time
	SlotEnd   time.Time
	Released  bool
}

// CandidateSlot — элемент выдачи Suggestion Engine.
type CandidateSlot struct {
	Date           time.Time
	Slot           TimeSlot
	SlotStart      time.Time
	SlotEnd        time.Time
	MaxCapacity    int32
	Committed      int32
	OccupancyRatio float64
	Suggested      bool
}
