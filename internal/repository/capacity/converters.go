package capacity

import "scheduler/internal/entities"

func ToDomain(w *WindowDB) *entities.CapacityWindow {
	if w == nil {
		return nil
	}
	return &entities.CapacityWindow{
		ID:          w.ID,
		Date:        w.Date,
		Slot:        entities.TimeSlot(w.Slot),
		SlotStart:   w.SlotStart,
		SlotEnd:     w.SlotEnd,
		MaxCapacity: w.MaxCapacity,
		Committed:   w.Committed,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
