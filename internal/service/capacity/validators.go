package capacity

import "scheduler/internal/entities"

func isValidSlot(slot entities.TimeSlot) bool {
	switch slot {
	case entities.SlotMorning, entities.SlotAfternoon, entities.SlotEvening, entities.SlotCustom:
		return true
	default:
		return false
	}
}
