package tracking

import "scheduler/internal/entities"

func ToDomain(r *RecordDB) *entities.TrackingRecord {
	if r == nil {
		return nil
	}
	return &entities.TrackingRecord{
		ID:         r.ID,
		ScheduleID: r.ScheduleID,
		Status:     entities.ScheduleStatus(r.Status),
		Lat:        r.Lat,
		Lng:        r.Lng,
		RecordedAt: r.RecordedAt,
	}
}
