package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scheduler/internal/entities"
	"scheduler/internal/service/capacity"
	retrierconfig "scheduler/pkg/retrier"
	"scheduler/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Schedule struct {
	repository Repository
	capacity   CapacityService
	tokens     TokenIssuer
	tracking   TrackingAppender
	slotTimes  SlotTimeFactory
	txManager  TxManager
	retrier    retrier
}

func New(
	repository Repository,
	capacityService CapacityService,
	tokens TokenIssuer,
	tracking TrackingAppender,
	slotTimes SlotTimeFactory,
	txManager TxManager,
) *Schedule {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableErr,
	}

	return &Schedule{
		repository: repository,
		capacity:   capacityService,
		tokens:     tokens,
		tracking:   tracking,
		slotTimes:  slotTimes,
		txManager:  txManager,
		retrier:    backoff_adapter.New(retryConfig),
	}
}

type CreateRequest struct {
	OrderRef         string
	Date             time.Time
	Slot             entities.TimeSlot
	CustomStart      time.Time
	CustomEnd        time.Time
	DeliveryType     entities.DeliveryType
	Priority         entities.Priority
	Contact          entities.Contact
	DeliveryFeeCents int64
	CustomerNotes    string
	Instructions     string
}

type RescheduleRequest struct {
	ID          int64
	Date        time.Time
	Slot        entities.TimeSlot
	CustomStart time.Time
	CustomEnd   time.Time
	Reason      string
}

// Create бронирует место в окне и сохраняет расписание одной
// транзакцией: откат отменяет и инкремент capacity.
func (s *Schedule) Create(ctx context.Context, req CreateRequest) (*entities.DeliverySchedule, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	date := dateOnly(req.Date)
	start, end := s.bounds(date, req.Slot, req.CustomStart, req.CustomEnd)

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, fmt.Errorf("issue confirmation token: %w", err)
	}

	var created *entities.DeliverySchedule
	err = s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetActiveByOrderRef(ctx, req.OrderRef)
		if err != nil && !errors.Is(err, ErrScheduleNotFound) {
			return fmt.Errorf("check active schedule: %w", err)
		}
		if existing != nil {
			return ErrOrderAlreadyScheduled
		}

		_, err = s.capacity.Reserve(ctx, capacity.ReservationRequest{
			Date:      date,
			Slot:      req.Slot,
			SlotStart: start,
			SlotEnd:   end,
		})
		if err != nil {
			return fmt.Errorf("reserve capacity: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.repository.Create(ctx, entities.DeliverySchedule{
			OrderRef:          req.OrderRef,
			ScheduledDate:     date,
			TimeSlot:          req.Slot,
			StartAt:           start,
			EndAt:             end,
			DeliveryType:      req.DeliveryType,
			Priority:          req.Priority,
			Status:            entities.StatusScheduled,
			Contact:           req.Contact,
			DeliveryFeeCents:  req.DeliveryFeeCents,
			ConfirmationToken: token,
			CustomerNotes:     req.CustomerNotes,
			Instructions:      req.Instructions,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues("create").Inc()
	return created, nil
}

func (s *Schedule) Confirm(ctx context.Context, id int64, notes string) (*entities.DeliverySchedule, error) {
	var confirmed *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		next, ok := current.Status.Next(entities.EventConfirm)
		if !ok {
			return fmt.Errorf("%w: cannot confirm schedule in status %s", ErrInvalidTransition, current.Status)
		}

		now := time.Now().UTC()
		modify := entities.ScheduleModify{
			Status:      &next,
			ConfirmedAt: &now,
		}
		if notes != "" {
			modify.ConfirmationNotes = &notes
		}

		confirmed, err = s.updateStatusGuarded(ctx, id, current.Status, modify)
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventConfirm.String()).Inc()
	return confirmed, nil
}

func (s *Schedule) AssignDistributor(ctx context.Context, id int64, distributorRef string) (*entities.DeliverySchedule, error) {
	if !isValidDistributorRef(distributorRef) {
		return nil, ErrInvalidDistributorRef
	}

	var assigned *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		if _, ok := current.Status.Next(entities.EventAssign); !ok {
			return fmt.Errorf("%w: cannot assign distributor in status %s", ErrInvalidTransition, current.Status)
		}

		err = s.capacity.CheckDistributorConflict(ctx, distributorRef, current.ScheduledDate, current.StartAt, current.EndAt, current.ID)
		if err != nil {
			return fmt.Errorf("check distributor conflict: %w", err)
		}

		assigned, err = s.updateStatusGuarded(ctx, id, current.Status, entities.ScheduleModify{
			DistributorRef: &distributorRef,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventAssign.String()).Inc()
	return assigned, nil
}

func (s *Schedule) Start(ctx context.Context, id int64) (*entities.DeliverySchedule, error) {
	var started *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		next, ok := current.Status.Next(entities.EventStart)
		if !ok {
			return fmt.Errorf("%w: cannot start schedule in status %s", ErrInvalidTransition, current.Status)
		}
		if current.DistributorRef == "" {
			return ErrDistributorRequired
		}

		started, err = s.updateStatusGuarded(ctx, id, current.Status, entities.ScheduleModify{Status: &next})
		if err != nil {
			return err
		}

		// первый пинг трекинга — часть перехода
		if err := s.tracking.AppendStatus(ctx, id, next); err != nil {
			return fmt.Errorf("append tracking record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventStart.String()).Inc()
	return started, nil
}

func (s *Schedule) Complete(ctx context.Context, id int64) (*entities.DeliverySchedule, error) {
	var completed *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		next, ok := current.Status.Next(entities.EventComplete)
		if !ok {
			return fmt.Errorf("%w: cannot complete schedule in status %s", ErrInvalidTransition, current.Status)
		}

		completed, err = s.terminate(ctx, current, next, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventComplete.String()).Inc()
	return completed, nil
}

func (s *Schedule) MarkMissed(ctx context.Context, id int64) (*entities.DeliverySchedule, error) {
	var missed *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		next, ok := current.Status.Next(entities.EventMarkMissed)
		if !ok {
			return fmt.Errorf("%w: cannot mark missed schedule in status %s", ErrInvalidTransition, current.Status)
		}
		if time.Now().UTC().Before(current.EndAt) {
			return ErrDeliveryWindowNotEnded
		}

		missed, err = s.terminate(ctx, current, next, "delivery window elapsed")
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventMarkMissed.String()).Inc()
	return missed, nil
}

func (s *Schedule) Cancel(ctx context.Context, id int64, reason string) (*entities.DeliverySchedule, error) {
	if !isValidCancelReason(reason) {
		return nil, ErrInvalidCancelReason
	}

	var cancelled *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		cancelled, err = s.cancelLocked(ctx, current, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventCancel.String()).Inc()
	return cancelled, nil
}

// CancelByOrderRef отменяет активное расписание заказа; используется
// обработчиком событий order-service.
func (s *Schedule) CancelByOrderRef(ctx context.Context, orderRef, reason string) (*entities.DeliverySchedule, error) {
	if !isValidOrderRef(orderRef) {
		return nil, ErrInvalidOrderRef
	}
	if !isValidCancelReason(reason) {
		return nil, ErrInvalidCancelReason
	}

	var cancelled *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetActiveByOrderRef(ctx, orderRef)
		if err != nil {
			return fmt.Errorf("get active schedule: %w", err)
		}

		cancelled, err = s.cancelLocked(ctx, current, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventCancel.String()).Inc()
	return cancelled, nil
}

// CompleteByOrderRef завершает доставку в пути по событию заказа.
func (s *Schedule) CompleteByOrderRef(ctx context.Context, orderRef string) (*entities.DeliverySchedule, error) {
	if !isValidOrderRef(orderRef) {
		return nil, ErrInvalidOrderRef
	}

	var completed *entities.DeliverySchedule
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetActiveByOrderRef(ctx, orderRef)
		if err != nil {
			return fmt.Errorf("get active schedule: %w", err)
		}

		next, ok := current.Status.Next(entities.EventComplete)
		if !ok {
			return fmt.Errorf("%w: cannot complete schedule in status %s", ErrInvalidTransition, current.Status)
		}

		completed, err = s.terminate(ctx, current, next, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventComplete.String()).Inc()
	return completed, nil
}

// Reschedule атомарно переводит старое расписание в rescheduled,
// освобождает его окно, бронирует новое и создает связанную запись.
// Дистрибьютор на новую запись не переносится и назначается заново.
func (s *Schedule) Reschedule(ctx context.Context, req RescheduleRequest) (*entities.DeliverySchedule, error) {
	if !isValidSlot(req.Slot) {
		return nil, ErrInvalidSlot
	}
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if req.Slot == entities.SlotCustom && !req.CustomStart.Before(req.CustomEnd) {
		return nil, ErrInvalidCustomRange
	}

	date := dateOnly(req.Date)
	start, end := s.bounds(date, req.Slot, req.CustomStart, req.CustomEnd)

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, fmt.Errorf("issue confirmation token: %w", err)
	}

	var created *entities.DeliverySchedule
	err = s.inTx(ctx, func(ctx context.Context) error {
		old, err := s.repository.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		next, ok := old.Status.Next(entities.EventReschedule)
		if !ok {
			return fmt.Errorf("%w: cannot reschedule schedule in status %s", ErrInvalidTransition, old.Status)
		}

		// старая бронь освобождается до новой: перенос на другое время
		// внутри собственного заполненного окна не должен упираться в
		// потолок, транзакция откатит освобождение при любом сбое ниже
		if err := s.capacity.Release(ctx, reservationOf(old)); err != nil {
			return fmt.Errorf("release old capacity: %w", err)
		}

		_, err = s.capacity.Reserve(ctx, capacity.ReservationRequest{
			Date:      date,
			Slot:      req.Slot,
			SlotStart: start,
			SlotEnd:   end,
		})
		if err != nil {
			return fmt.Errorf("reserve new capacity: %w", err)
		}

		modify := entities.ScheduleModify{Status: &next}
		if req.Reason != "" {
			modify.StatusReason = &req.Reason
		}
		if _, err := s.updateStatusGuarded(ctx, old.ID, old.Status, modify); err != nil {
			return err
		}

		now := time.Now().UTC()
		created, err = s.repository.Create(ctx, entities.DeliverySchedule{
			OrderRef:          old.OrderRef,
			ScheduledDate:     date,
			TimeSlot:          req.Slot,
			StartAt:           start,
			EndAt:             end,
			DeliveryType:      old.DeliveryType,
			Priority:          old.Priority,
			Status:            entities.StatusScheduled,
			Contact:           old.Contact,
			DeliveryFeeCents:  old.DeliveryFeeCents,
			ConfirmationToken: token,
			CustomerNotes:     old.CustomerNotes,
			Instructions:      old.Instructions,
			RescheduledFromID: &old.ID,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create rescheduled schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(entities.EventReschedule.String()).Inc()
	return created, nil
}

// SweepMissed переводит просроченные расписания в missed. Запуск
// идемпотентен: уже терминальные записи и гонки со сменой статуса
// пропускаются молча.
func (s *Schedule) SweepMissed(ctx context.Context) (int64, error) {
	overdue, err := s.repository.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("list overdue schedules: %w", err)
	}

	var marked int64
	for _, sched := range overdue {
		if err := ctx.Err(); err != nil {
			return marked, err
		}

		_, err := s.MarkMissed(ctx, sched.ID)
		if err != nil {
			if errors.Is(err, ErrInvalidTransition) ||
				errors.Is(err, ErrDeliveryWindowNotEnded) ||
				errors.Is(err, ErrScheduleNotFound) {
				continue
			}
			return marked, fmt.Errorf("mark missed %d: %w", sched.ID, err)
		}
		marked++
	}
	return marked, nil
}

func (s *Schedule) GetSchedule(ctx context.Context, id int64) (*entities.DeliverySchedule, error) {
	sched, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return sched, nil
}

func (s *Schedule) ListSchedules(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error) {
	schedules, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// terminate выполняет терминальный переход с освобождением capacity и
// пингом трекинга одной операцией.
func (s *Schedule) terminate(ctx context.Context, current *entities.DeliverySchedule, next entities.ScheduleStatus, reason string) (*entities.DeliverySchedule, error) {
	modify := entities.ScheduleModify{Status: &next}
	if reason != "" {
		modify.StatusReason = &reason
	}

	updated, err := s.updateStatusGuarded(ctx, current.ID, current.Status, modify)
	if err != nil {
		return nil, err
	}

	if err := s.capacity.Release(ctx, reservationOf(current)); err != nil {
		return nil, fmt.Errorf("release capacity: %w", err)
	}

	if err := s.tracking.AppendStatus(ctx, current.ID, next); err != nil {
		return nil, fmt.Errorf("append tracking record: %w", err)
	}
	return updated, nil
}

func (s *Schedule) cancelLocked(ctx context.Context, current *entities.DeliverySchedule, reason string) (*entities.DeliverySchedule, error) {
	next, ok := current.Status.Next(entities.EventCancel)
	if !ok {
		return nil, fmt.Errorf("%w: cannot cancel schedule in status %s", ErrInvalidTransition, current.Status)
	}
	return s.terminate(ctx, current, next, reason)
}

// updateStatusGuarded транслирует ноль затронутых строк после успешного
// чтения в ErrInvalidTransition: статус успел измениться конкурентно.
func (s *Schedule) updateStatusGuarded(ctx context.Context, id int64, from entities.ScheduleStatus, modify entities.ScheduleModify) (*entities.DeliverySchedule, error) {
	updated, err := s.repository.UpdateStatus(ctx, id, from, modify)
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			return nil, fmt.Errorf("%w: schedule %d left status %s concurrently", ErrInvalidTransition, id, from)
		}
		return nil, fmt.Errorf("update schedule status: %w", err)
	}
	return updated, nil
}

func (s *Schedule) bounds(date time.Time, slot entities.TimeSlot, customStart, customEnd time.Time) (time.Time, time.Time) {
	if slot == entities.SlotCustom {
		return onDate(date, customStart), onDate(date, customEnd)
	}
	return s.slotTimes.Bounds(date, slot)
}

// inTx оборачивает транзакцию ограниченными повторами: транзиентные
// сбои ретраятся, детерминированные доменные исходы — никогда.
func (s *Schedule) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, fn)
	})
	if err != nil && isRetryableErr(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	permanent := []error{
		ErrScheduleNotFound,
		ErrOrderAlreadyScheduled,
		ErrInvalidTransition,
		ErrDistributorRequired,
		ErrDeliveryWindowNotEnded,
		ErrInvalidOrderRef,
		ErrInvalidCancelReason,
		capacity.ErrCapacityExceeded,
		capacity.ErrTimeConflict,
		capacity.ErrInvalidSlot,
		capacity.ErrInvalidTimeRange,
	}
	for _, p := range permanent {
		if errors.Is(err, p) {
			return false
		}
	}
	return true
}

func reservationOf(sched *entities.DeliverySchedule) *entities.Reservation {
	return &entities.Reservation{
		Date:      sched.ScheduledDate,
		Slot:      sched.TimeSlot,
		SlotStart: sched.StartAt,
		SlotEnd:   sched.EndAt,
	}
}

func isValidCancelReason(reason string) bool {
	return len(reason) > 0
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func onDate(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
}
