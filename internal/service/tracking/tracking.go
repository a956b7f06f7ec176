package tracking

import (
	"context"
	"fmt"
	"time"

	"scheduler/internal/entities"
	"scheduler/pkg/logger"
)

type Tracking struct {
	repository Repository
	schedules  ScheduleReader
	cache      Cache
	staleness  time.Duration
	log        serviceLogger
}

func New(repository Repository, schedules ScheduleReader, cache Cache, staleness time.Duration, log serviceLogger) *Tracking {
	return &Tracking{
		repository: repository,
		schedules:  schedules,
		cache:      cache,
		staleness:  staleness,
		log:        log,
	}
}

type RecordRequest struct {
	ScheduleID int64
	Status     entities.ScheduleStatus
	Lat        *float64
	Lng        *float64
}

// Record добавляет пинг трекинга. История append-only: записи не
// изменяются и не удаляются.
func (t *Tracking) Record(ctx context.Context, req RecordRequest) (*entities.TrackingRecord, error) {
	if err := validateRecord(req); err != nil {
		return nil, err
	}

	sched, err := t.schedules.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if sched.Status.Terminal() && req.Status != sched.Status {
		return nil, ErrScheduleTerminal
	}

	record, err := t.repository.Append(ctx, entities.TrackingRecord{
		ScheduleID: req.ScheduleID,
		Status:     req.Status,
		Lat:        req.Lat,
		Lng:        req.Lng,
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("append tracking record: %w", err)
	}

	t.cacheLatest(ctx, *record)
	return record, nil
}

// AppendStatus — служебный пинг при смене статуса расписания, без
// координат и без повторной проверки статуса: переход уже проверен.
// Кеш здесь не пишется: вызов идет внутри транзакции перехода, и при
// откате запись в кеше пережила бы несостоявшийся пинг. Live-лента
// дочитает запись из репозитория при промахе кеша.
func (t *Tracking) AppendStatus(ctx context.Context, scheduleID int64, status entities.ScheduleStatus) error {
	_, err := t.repository.Append(ctx, entities.TrackingRecord{
		ScheduleID: scheduleID,
		Status:     status,
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("append tracking record: %w", err)
	}
	return nil
}

// LiveFilter сужает live-ленту. ActiveOnly оставляет только расписания
// в статусах scheduled/confirmed/in_progress; нулевая Date и пустой
// DistributorRef означают отсутствие фильтра по полю.
type LiveFilter struct {
	DistributorRef string
	Date           time.Time
	ActiveOnly     bool
}

// LiveFeed возвращает отфильтрованные доставки с последним пингом каждой.
func (t *Tracking) LiveFeed(ctx context.Context, filter LiveFilter) ([]entities.LiveEntry, error) {
	scheduleFilter := entities.ScheduleFilter{
		DistributorRef: filter.DistributorRef,
	}
	if filter.ActiveOnly {
		scheduleFilter.Statuses = entities.ActiveStatuses
	}
	if !filter.Date.IsZero() {
		scheduleFilter.DateFrom = filter.Date
		scheduleFilter.DateTo = filter.Date
	}

	schedules, err := t.schedules.List(ctx, scheduleFilter)
	if err != nil {
		return nil, fmt.Errorf("list live schedules: %w", err)
	}
	if len(schedules) == 0 {
		return []entities.LiveEntry{}, nil
	}

	latest := make(map[int64]entities.TrackingRecord, len(schedules))
	missing := make([]int64, 0, len(schedules))
	for _, sched := range schedules {
		record, err := t.cache.GetLatest(ctx, sched.ID)
		if err != nil {
			t.log.Warn("tracking cache lookup failed",
				logger.NewField("schedule_id", sched.ID),
				logger.NewField("error", err),
			)
		}
		if record == nil {
			missing = append(missing, sched.ID)
			continue
		}
		latest[sched.ID] = *record
	}

	if len(missing) > 0 {
		fromRepo, err := t.repository.LatestBySchedules(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("load latest tracking records: %w", err)
		}
		for id, record := range fromRepo {
			latest[id] = record
		}
	}

	now := time.Now().UTC()
	feed := make([]entities.LiveEntry, 0, len(schedules))
	for _, sched := range schedules {
		entry := entities.LiveEntry{Schedule: sched, Stale: true}
		if record, ok := latest[sched.ID]; ok {
			entry.Latest = &record
			entry.Stale = now.Sub(record.RecordedAt) > t.staleness
		}
		feed = append(feed, entry)
	}
	return feed, nil
}

// History возвращает все пинги расписания в порядке записи.
func (t *Tracking) History(ctx context.Context, scheduleID int64) ([]entities.TrackingRecord, error) {
	if _, err := t.schedules.GetByID(ctx, scheduleID); err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	records, err := t.repository.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list tracking records: %w", err)
	}
	return records, nil
}

// кеш best-effort: сбой не роняет запись пинга
func (t *Tracking) cacheLatest(ctx context.Context, record entities.TrackingRecord) {
	if err := t.cache.SetLatest(ctx, record); err != nil {
		t.log.Warn("tracking cache update failed",
			logger.NewField("schedule_id", record.ScheduleID),
			logger.NewField("error", err),
		)
	}
}

func validateRecord(req RecordRequest) error {
	switch req.Status {
	case entities.StatusScheduled, entities.StatusConfirmed, entities.StatusInProgress,
		entities.StatusDelivered, entities.StatusMissed, entities.StatusCancelled,
		entities.StatusRescheduled:
	default:
		return ErrInvalidStatus
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		return ErrInvalidCoordinates
	}
	if req.Lat != nil {
		if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
			return ErrInvalidCoordinates
		}
	}
	return nil
}
