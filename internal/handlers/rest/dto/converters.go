package dto

import (
	"time"

	"scheduler/internal/entities"
)

func FromScheduleEntity(schedule *entities.DeliverySchedule) Schedule {
	return Schedule{
		ID:             schedule.ID,
		OrderRef:       schedule.OrderRef,
		Date:           schedule.ScheduledDate.Format(time.DateOnly),
		TimeSlot:       schedule.TimeSlot.String(),
		StartAt:        schedule.StartAt,
		EndAt:          schedule.EndAt,
		DeliveryType:   schedule.DeliveryType.String(),
		Priority:       schedule.Priority.String(),
		Status:         schedule.Status.String(),
		DistributorRef: schedule.DistributorRef,
		Contact: Contact{
			Person:  schedule.Contact.Person,
			Phone:   schedule.Contact.Phone,
			Email:   schedule.Contact.Email,
			Address: schedule.Contact.Address,
		},
		DeliveryFeeCents:  schedule.DeliveryFeeCents,
		ConfirmedAt:       schedule.ConfirmedAt,
		ConfirmationNotes: schedule.ConfirmationNotes,
		CustomerNotes:     schedule.CustomerNotes,
		Instructions:      schedule.Instructions,
		StatusReason:      schedule.StatusReason,
		RescheduledFromID: schedule.RescheduledFromID,
		CreatedAt:         schedule.CreatedAt,
		UpdatedAt:         schedule.UpdatedAt,
	}
}

func FromTrackingEntity(record *entities.TrackingRecord) TrackingRecord {
	return TrackingRecord{
		ID:         record.ID,
		ScheduleID: record.ScheduleID,
		Status:     record.Status.String(),
		Lat:        record.Lat,
		Lng:        record.Lng,
		RecordedAt: record.RecordedAt,
	}
}

func FromStatsEntity(stats entities.DeliveryStats) DeliveryStats {
	return DeliveryStats{
		Total:             stats.Total,
		Delivered:         stats.Delivered,
		Missed:            stats.Missed,
		Cancelled:         stats.Cancelled,
		CompletionRate:    stats.CompletionRate,
		MissedRate:        stats.MissedRate,
		TotalRevenueCents: stats.TotalRevenueCents,
		PerformanceScore:  stats.PerformanceScore,
	}
}
