package schedule

import (
	"strings"

	"scheduler/internal/entities"
)

func isValidOrderRef(orderRef string) bool {
	return strings.TrimSpace(orderRef) != ""
}

func isValidDistributorRef(distributorRef string) bool {
	return strings.TrimSpace(distributorRef) != ""
}

func isValidSlot(slot entities.TimeSlot) bool {
	switch slot {
	case entities.SlotMorning, entities.SlotAfternoon, entities.SlotEvening, entities.SlotCustom:
		return true
	default:
		return false
	}
}

func isValidDeliveryType(deliveryType entities.DeliveryType) bool {
	switch deliveryType {
	case entities.TypeStandard, entities.TypeExpress, entities.TypeScheduled, entities.TypePickup:
		return true
	default:
		return false
	}
}

func isValidPriority(priority entities.Priority) bool {
	switch priority {
	case entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent:
		return true
	default:
		return false
	}
}

func validateCreate(req CreateRequest) error {
	if !isValidOrderRef(req.OrderRef) {
		return ErrInvalidOrderRef
	}
	if req.Date.IsZero() {
		return ErrInvalidDate
	}
	if !isValidSlot(req.Slot) {
		return ErrInvalidSlot
	}
	if req.Slot == entities.SlotCustom && !req.CustomStart.Before(req.CustomEnd) {
		return ErrInvalidCustomRange
	}
	if !isValidDeliveryType(req.DeliveryType) {
		return ErrInvalidDeliveryType
	}
	if !isValidPriority(req.Priority) {
		return ErrInvalidPriority
	}
	if req.DeliveryFeeCents < 0 {
		return ErrInvalidFee
	}
	return nil
}
