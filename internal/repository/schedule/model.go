package schedule

import "time"

type ScheduleDB struct {
	ID                int64
	OrderRef          string
	ScheduledDate     time.Time
	TimeSlot          string
	StartAt           time.Time
	EndAt             time.Time
	DeliveryType      string
	Priority          string
	Status            string
	DistributorRef    string
	ContactPerson     string
	ContactPhone      string
	ContactEmail      string
	ContactAddress    string
	DeliveryFeeCents  int64
	ConfirmationToken string
	ConfirmedAt       *time.Time
	ConfirmationNotes string
	CustomerNotes     string
	Instructions      string
	StatusReason      string
	RescheduledFromID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
