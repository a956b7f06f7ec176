package tracking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"scheduler/internal/entities"
)

const recordColumns = `id, schedule_id, status, lat, lng, recorded_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, record entities.TrackingRecord) (*entities.TrackingRecord, error) {
	query := `
		INSERT INTO tracking_records (schedule_id, status, lat, lng, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + recordColumns

	created, err := scanRecord(r.querier.QueryRow(
		ctx,
		query,
		record.ScheduleID,
		record.Status.String(),
		record.Lat,
		record.Lng,
		record.RecordedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return ToDomain(created), nil
}

// LatestBySchedules возвращает последний пинг каждого расписания из
// списка одним запросом.
func (r *Repository) LatestBySchedules(ctx context.Context, scheduleIDs []int64) (map[int64]entities.TrackingRecord, error) {
	if len(scheduleIDs) == 0 {
		return map[int64]entities.TrackingRecord{}, nil
	}

	query := `
		SELECT DISTINCT ON (schedule_id) ` + recordColumns + `
		FROM tracking_records
		WHERE schedule_id = ANY($1)
		ORDER BY schedule_id, recorded_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository latest error: %w", err)
	}
	defer rows.Close()

	latest := make(map[int64]entities.TrackingRecord, len(scheduleIDs))
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository scan error: %w", err)
		}
		latest[record.ScheduleID] = *ToDomain(record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository rows error: %w", err)
	}
	return latest, nil
}

func (r *Repository) ListBySchedule(ctx context.Context, scheduleID int64) ([]entities.TrackingRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM tracking_records
		WHERE schedule_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	records := make([]entities.TrackingRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository scan error: %w", err)
		}
		records = append(records, *ToDomain(record))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository rows error: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (*RecordDB, error) {
	var r RecordDB
	err := row.Scan(
		&r.ID,
		&r.ScheduleID,
		&r.Status,
		&r.Lat,
		&r.Lng,
		&r.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
