// Package dto — транспортные модели REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Contact struct {
	Person  string `json:"person"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

type ScheduleCreate struct {
	OrderRef         string  `json:"order_ref"`
	Date             string  `json:"date"`
	TimeSlot         string  `json:"time_slot"`
	CustomStart      string  `json:"custom_start,omitempty"`
	CustomEnd        string  `json:"custom_end,omitempty"`
	DeliveryType     string  `json:"delivery_type,omitempty"`
	Priority         string  `json:"priority,omitempty"`
	Contact          Contact `json:"contact"`
	DeliveryFeeCents int64   `json:"delivery_fee_cents"`
	CustomerNotes    string  `json:"customer_notes,omitempty"`
	Instructions     string  `json:"instructions,omitempty"`
}

type Schedule struct {
	ID                int64      `json:"id"`
	OrderRef          string     `json:"order_ref"`
	Date              string     `json:"date"`
	TimeSlot          string     `json:"time_slot"`
	StartAt           time.Time  `json:"start_at"`
	EndAt             time.Time  `json:"end_at"`
	DeliveryType      string     `json:"delivery_type"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	DistributorRef    string     `json:"distributor_ref,omitempty"`
	Contact           Contact    `json:"contact"`
	DeliveryFeeCents  int64      `json:"delivery_fee_cents"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	ConfirmationNotes string     `json:"confirmation_notes,omitempty"`
	CustomerNotes     string     `json:"customer_notes,omitempty"`
	Instructions      string     `json:"instructions,omitempty"`
	StatusReason      string     `json:"status_reason,omitempty"`
	RescheduledFromID *int64     `json:"rescheduled_from_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ScheduleCreateResponse struct {
	Schedule         Schedule `json:"schedule"`
	ConfirmationLink string   `json:"confirmation_link"`
}

type ScheduleConfirm struct {
	Notes string `json:"notes,omitempty"`
}

type ScheduleCancel struct {
	Reason string `json:"reason"`
}

type ScheduleAssign struct {
	DistributorRef string `json:"distributor_ref"`
}

type ScheduleReschedule struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	CustomStart string `json:"custom_start,omitempty"`
	CustomEnd   string `json:"custom_end,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type CapacityWindow struct {
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	SlotStart   time.Time `json:"slot_start"`
	SlotEnd     time.Time `json:"slot_end"`
	MaxCapacity int32     `json:"max_capacity"`
	Committed   int32     `json:"committed"`
	Available   int32     `json:"available"`
}

type CapacityPut struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	CustomStart string `json:"custom_start,omitempty"`
	CustomEnd   string `json:"custom_end,omitempty"`
	MaxCapacity int32  `json:"max_capacity"`
}

type SlotSuggestion struct {
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	SlotStart time.Time `json:"slot_start"`
	SlotEnd   time.Time `json:"slot_end"`
	Available int32     `json:"available"`
	Suggested bool      `json:"suggested"`
}

type CapacityResponse struct {
	Windows     []CapacityWindow `json:"windows"`
	Suggestions []SlotSuggestion `json:"suggestions"`
}

type TrackingCreate struct {
	ScheduleID int64    `json:"schedule_id"`
	Status     string   `json:"status"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

type TrackingRecord struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"schedule_id"`
	Status     string    `json:"status"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type LiveEntry struct {
	Schedule Schedule        `json:"schedule"`
	Latest   *TrackingRecord `json:"latest,omitempty"`
	Stale    bool            `json:"stale"`
}

type DeliveryStats struct {
	Total             int64   `json:"total"`
	Delivered         int64   `json:"delivered"`
	Missed            int64   `json:"missed"`
	Cancelled         int64   `json:"cancelled"`
	CompletionRate    float64 `json:"completion_rate"`
	MissedRate        float64 `json:"missed_rate"`
	TotalRevenueCents int64   `json:"total_revenue_cents"`
	PerformanceScore  float64 `json:"performance_score"`
}

type DeliveryReport struct {
	From           string                   `json:"from"`
	To             string                   `json:"to"`
	DistributorRef string                   `json:"distributor_ref,omitempty"`
	Overall        DeliveryStats            `json:"overall"`
	BySlot         map[string]DeliveryStats `json:"by_slot"`
	ByType         map[string]DeliveryStats `json:"by_type"`
}
