package schedule

import "scheduler/internal/entities"

func ToDomain(s *ScheduleDB) *entities.DeliverySchedule {
	if s == nil {
		return nil
	}
	return &entities.DeliverySchedule{
		ID:             s.ID,
		OrderRef:       s.OrderRef,
		ScheduledDate:  s.ScheduledDate,
		TimeSlot:       entities.TimeSlot(s.TimeSlot),
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		DeliveryType:   entities.DeliveryType(s.DeliveryType),
		Priority:       entities.Priority(s.Priority),
		Status:         entities.ScheduleStatus(s.Status),
		DistributorRef: s.DistributorRef,
		Contact: entities.Contact{
			Person:  s.ContactPerson,
			Phone:   s.ContactPhone,
			Email:   s.ContactEmail,
			Address: s.ContactAddress,
		},
		DeliveryFeeCents:  s.DeliveryFeeCents,
		ConfirmationToken: s.ConfirmationToken,
		ConfirmedAt:       s.ConfirmedAt,
		ConfirmationNotes: s.ConfirmationNotes,
		CustomerNotes:     s.CustomerNotes,
		Instructions:      s.Instructions,
		StatusReason:      s.StatusReason,
		RescheduledFromID: s.RescheduledFromID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func FromDomain(s *entities.DeliverySchedule) *ScheduleDB {
	if s == nil {
		return nil
	}
	return &ScheduleDB{
		ID:                s.ID,
		OrderRef:          s.OrderRef,
		ScheduledDate:     s.ScheduledDate,
		TimeSlot:          s.TimeSlot.String(),
		StartAt:           s.StartAt,
		EndAt:             s.EndAt,
		DeliveryType:      s.DeliveryType.String(),
		Priority:          s.Priority.String(),
		Status:            s.Status.String(),
		DistributorRef:    s.DistributorRef,
		ContactPerson:     s.Contact.Person,
		ContactPhone:      s.Contact.Phone,
		ContactEmail:      s.Contact.Email,
		ContactAddress:    s.Contact.Address,
		DeliveryFeeCents:  s.DeliveryFeeCents,
		ConfirmationToken: s.ConfirmationToken,
		ConfirmedAt:       s.ConfirmedAt,
		ConfirmationNotes: s.ConfirmationNotes,
		CustomerNotes:     s.CustomerNotes,
		Instructions:      s.Instructions,
		StatusReason:      s.StatusReason,
		RescheduledFromID: s.RescheduledFromID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
