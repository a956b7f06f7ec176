package entities

import "time"

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotCustom    TimeSlot = "custom"
)

func (s TimeSlot) String() string {
	return string(s)
}

// StandardSlots перечислены в порядке следования в течение дня.
var StandardSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

type DeliveryType string

const (
	TypeStandard  DeliveryType = "standard"
	TypeExpress   DeliveryType = "express"
	TypeScheduled DeliveryType = "scheduled"
	TypePickup    DeliveryType = "pickup"
)

const DefaultDeliveryType = TypeStandard

func (t DeliveryType) String() string {
	return string(t)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

const DefaultPriority = PriorityNormal

func (p Priority) String() string {
	return string(p)
}

type ScheduleStatus string

const (
	StatusScheduled   ScheduleStatus = "scheduled"
	StatusConfirmed   ScheduleStatus = "confirmed"
	StatusInProgress  ScheduleStatus = "in_progress"
	StatusDelivered   ScheduleStatus = "delivered"
	StatusMissed      ScheduleStatus = "missed"
	StatusCancelled   ScheduleStatus = "cancelled"
	StatusRescheduled ScheduleStatus = "rescheduled"
)

func (s ScheduleStatus) String() string {
	return string(s)
}

// Terminal сообщает, что из статуса нет ни одного разрешенного перехода.
func (s ScheduleStatus) Terminal() bool {
	switch s {
	case StatusDelivered, StatusMissed, StatusCancelled, StatusRescheduled:
		return true
	default:
		return false
	}
}

// ActiveStatuses — статусы, занимающие место в окне capacity.
var ActiveStatuses = []ScheduleStatus{StatusScheduled, StatusConfirmed, StatusInProgress}

type ScheduleEvent string

const (
	EventConfirm    ScheduleEvent = "confirm"
	EventAssign     ScheduleEvent = "assign_distributor"
	EventStart      ScheduleEvent = "start"
	EventComplete   ScheduleEvent = "complete"
	EventMarkMissed ScheduleEvent = "mark_missed"
	EventCancel     ScheduleEvent = "cancel"
	EventReschedule ScheduleEvent = "reschedule"
)

func (e ScheduleEvent) String() string {
	return string(e)
}

// transitions — явная таблица переходов жизненного цикла.
// Пара (статус, событие), отсутствующая в таблице, запрещена.
// EventAssign не меняет статус: назначение дистрибьютора разрешено
// до начала доставки.
var transitions = map[ScheduleStatus]map[ScheduleEvent]ScheduleStatus{
	StatusScheduled: {
		EventConfirm:    StatusConfirmed,
		EventAssign:     StatusScheduled,
		EventMarkMissed: StatusMissed,
		EventCancel:     StatusCancelled,
		EventReschedule: StatusRescheduled,
	},
	StatusConfirmed: {
		EventAssign:     StatusConfirmed,
		EventStart:      StatusInProgress,
		EventMarkMissed: StatusMissed,
		EventCancel:     StatusCancelled,
		EventReschedule: StatusRescheduled,
	},
	StatusInProgress: {
		EventComplete:   StatusDelivered,
		EventMarkMissed: StatusMissed,
		EventCancel:     StatusCancelled,
	},
}

// Next возвращает статус, в который переводит событие, и false если
// переход не разрешен таблицей.
func (s ScheduleStatus) Next(event ScheduleEvent) (ScheduleStatus, bool) {
	next, ok := transitions[s][event]
	return next, ok
}

// Contact — контактные данные получателя, не несут инвариантов.
type Contact struct {
	Person  string
	Phone   string
	Email   string
	Address string
}

type DeliverySchedule struct {
	ID                int64
	OrderRef          string
	ScheduledDate     time.Time
	TimeSlot          TimeSlot
	StartAt           time.Time
	EndAt             time.Time
	DeliveryType      DeliveryType
	Priority          Priority
	Status            ScheduleStatus
	DistributorRef    string // пустая строка — дистрибьютор не назначен
	Contact           Contact
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

type ScheduleModify struct {
	Status            *ScheduleStatus
	DistributorRef    *string
	ConfirmedAt       *time.Time
	ConfirmationNotes *string
	StatusReason      *string
}

// ScheduleFilter ограничивает выборки расписаний; нулевые значения
// означают отсутствие фильтра по полю.
type ScheduleFilter struct {
	Statuses       []ScheduleStatus
	OrderRef       string
	DistributorRef string
	DateFrom       time.Time
	DateTo         time.Time
	Slot           TimeSlot
	DeliveryType   DeliveryType
}
