package capacity

import (
	"context"
	"fmt"
	"time"

	"scheduler/internal/entities"
)

type Capacity struct {
	repository Repository
	schedules  ScheduleReader
	defaultMax int32
}

func New(repository Repository, schedules ScheduleReader, defaultMax int32) *Capacity {
	return &Capacity{
		repository: repository,
		schedules:  schedules,
		defaultMax: defaultMax,
	}
}

// ReservationRequest описывает запрашиваемое окно. DistributorRef
// опционален: при его наличии дополнительно проверяется пересечение с
// активными расписаниями этого дистрибьютора на ту же дату.
type ReservationRequest struct {
	Date              time.Time
	Slot              entities.TimeSlot
	SlotStart         time.Time
	SlotEnd           time.Time
	DistributorRef    string
	ExcludeScheduleID int64
}

// Reserve должен вызываться внутри транзакции вызывающей стороны:
// инкремент committed откатывается вместе с ней, что и дает пару
// reserve/commit-or-release без двойного бронирования.
func (c *Capacity) Reserve(ctx context.Context, req ReservationRequest) (*entities.Reservation, error) {
	if !isValidSlot(req.Slot) {
		return nil, ErrInvalidSlot
	}
	if !req.SlotStart.Before(req.SlotEnd) {
		return nil, ErrInvalidTimeRange
	}

	if req.DistributorRef != "" {
		err := c.CheckDistributorConflict(ctx, req.DistributorRef, req.Date, req.SlotStart, req.SlotEnd, req.ExcludeScheduleID)
		if err != nil {
			return nil, err
		}
	}

	window, err := c.repository.GetOrCreateWindow(ctx, req.Date, req.Slot, req.SlotStart, req.SlotEnd, c.defaultMax)
	if err != nil {
		return nil, fmt.Errorf("get or create capacity window: %w", err)
	}

	reserved, err := c.repository.TryReserve(ctx, window.ID)
	if err != nil {
		return nil, fmt.Errorf("reserve capacity window: %w", err)
	}
	if !reserved {
		ReservationConflictsTotal.WithLabelValues("capacity_exceeded").Inc()
		return nil, fmt.Errorf("%w: window %s %s is full", ErrCapacityExceeded, req.Date.Format(time.DateOnly), req.Slot)
	}

	return &entities.Reservation{
		WindowID:  window.ID,
		Date:      window.Date,
		Slot:      window.Slot,
		SlotStart: window.SlotStart,
		SlotEnd:   window.SlotEnd,
	}, nil
}

// Release идемпотентен: повторное освобождение уже освобожденной брони — no-op.
func (c *Capacity) Release(ctx context.Context, reservation *entities.Reservation) error {
	if reservation == nil || reservation.Released {
		return nil
	}

	err := c.repository.ReleaseWindow(ctx, reservation.Date, reservation.Slot, reservation.SlotStart, reservation.SlotEnd)
	if err != nil {
		return fmt.Errorf("release capacity window: %w", err)
	}

	reservation.Released = true
	return nil
}

// CheckDistributorConflict проверяет полуоткрытое пересечение
// [start, end) с активными расписаниями дистрибьютора на дату.
func (c *Capacity) CheckDistributorConflict(ctx context.Context, distributorRef string, date, start, end time.Time, excludeScheduleID int64) error {
	existing, err := c.schedules.ListActiveByDistributorOnDate(ctx, distributorRef, date)
	if err != nil {
		return fmt.Errorf("list distributor schedules: %w", err)
	}

	for _, schedule := range existing {
		if schedule.ID == excludeScheduleID {
			continue
		}
		if schedule.StartAt.Before(end) && start.Before(schedule.EndAt) {
			ReservationConflictsTotal.WithLabelValues("time_conflict").Inc()
			return fmt.Errorf("%w: distributor %s already committed to schedule %d", ErrTimeConflict, distributorRef, schedule.ID)
		}
	}
	return nil
}

// QueryWindows отдает окна диапазона; пустой slot означает все слоты.
func (c *Capacity) QueryWindows(ctx context.Context, from, to time.Time, slot entities.TimeSlot) ([]entities.CapacityWindow, error) {
	if from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	if slot != "" && !isValidSlot(slot) {
		return nil, ErrInvalidSlot
	}

	windows, err := c.repository.ListWindows(ctx, from, to, slot)
	if err != nil {
		return nil, fmt.Errorf("list capacity windows: %w", err)
	}
	return windows, nil
}

// SetMaxCapacity задает потолок окна оператором. Понижение ниже уже
// закоммиченного количества отклоняется.
func (c *Capacity) SetMaxCapacity(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, maxCapacity int32) (*entities.CapacityWindow, error) {
	if !isValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	if !slotStart.Before(slotEnd) {
		return nil, ErrInvalidTimeRange
	}
	if maxCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	window, err := c.repository.UpsertMaxCapacity(ctx, date, slot, slotStart, slotEnd, maxCapacity)
	if err != nil {
		return nil, fmt.Errorf("upsert max capacity: %w", err)
	}
	return window, nil
}

func (c *Capacity) DefaultMax() int32 {
	return c.defaultMax
}
