package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"scheduler/internal/entities"
	"scheduler/internal/service/capacity"
)

const windowColumns = `id, window_date, time_slot, slot_start, slot_end,
		max_capacity, committed, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetOrCreateWindow создает окно с дефолтным потолком при первом
// обращении. DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал
// строку и при конфликте.
func (r *Repository) GetOrCreateWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, defaultMax int32) (*entities.CapacityWindow, error) {
	query := `
		INSERT INTO capacity_windows (window_date, time_slot, slot_start, slot_end, max_capacity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (window_date, time_slot, slot_start, slot_end)
		DO UPDATE SET updated_at = NOW()
		RETURNING ` + windowColumns

	window, err := scanWindow(r.querier.QueryRow(ctx, query, date, slot.String(), slotStart, slotEnd, defaultMax))
	if err != nil {
		return nil, fmt.Errorf("unexpected capacity repository get or create error: %w", err)
	}

	return ToDomain(window), nil
}

// TryReserve — условный инкремент: заполненное окно не меняется, и
// вызов возвращает false.
func (r *Repository) TryReserve(ctx context.Context, windowID int64) (bool, error) {
	query := `
		UPDATE capacity_windows
		SET committed = committed + 1,
			updated_at = NOW()
		WHERE id = $1
		AND committed < max_capacity
	`

	result, err := r.querier.Exec(ctx, query, windowID)
	if err != nil {
		return false, fmt.Errorf("unexpected capacity repository reserve error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ReleaseWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time) error {
	query := `
		UPDATE capacity_windows
		SET committed = GREATEST(committed - 1, 0),
			updated_at = NOW()
		WHERE window_date = $1
		AND time_slot = $2
		AND slot_start = $3
		AND slot_end = $4
	`

	result, err := r.querier.Exec(ctx, query, date, slot.String(), slotStart, slotEnd)
	if err != nil {
		return fmt.Errorf("unexpected capacity repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return capacity.ErrWindowNotFound
	}
	return nil
}

func (r *Repository) GetWindow(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time) (*entities.CapacityWindow, error) {
	query := `
		SELECT ` + windowColumns + `
		FROM capacity_windows
		WHERE window_date = $1
		AND time_slot = $2
		AND slot_start = $3
		AND slot_end = $4
	`

	window, err := scanWindow(r.querier.QueryRow(ctx, query, date, slot.String(), slotStart, slotEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrWindowNotFound
		}
		return nil, fmt.Errorf("unexpected capacity repository get error: %w", err)
	}

	return ToDomain(window), nil
}

func (r *Repository) ListWindows(ctx context.Context, from, to time.Time, slot entities.TimeSlot) ([]entities.CapacityWindow, error) {
	query := `
		SELECT ` + windowColumns + `
		FROM capacity_windows
		WHERE window_date >= $1
		AND window_date <= $2
	`
	args := []interface{}{from, to}

	if slot != "" {
		query += ` AND time_slot = $3`
		args = append(args, slot.String())
	}
	query += ` ORDER BY window_date ASC, slot_start ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected capacity repository list error: %w", err)
	}
	defer rows.Close()

	windows := make([]entities.CapacityWindow, 0)
	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected capacity repository scan error: %w", err)
		}
		windows = append(windows, *ToDomain(window))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected capacity repository rows error: %w", err)
	}
	return windows, nil
}

// UpsertMaxCapacity меняет потолок окна; понижение ниже текущего
// committed не проходит предикат и отдается как ErrCapacityBelowCommitted.
func (r *Repository) UpsertMaxCapacity(ctx context.Context, date time.Time, slot entities.TimeSlot, slotStart, slotEnd time.Time, maxCapacity int32) (*entities.CapacityWindow, error) {
	query := `
		INSERT INTO capacity_windows (window_date, time_slot, slot_start, slot_end, max_capacity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (window_date, time_slot, slot_start, slot_end)
		DO UPDATE SET max_capacity = EXCLUDED.max_capacity,
			updated_at = NOW()
		WHERE capacity_windows.committed <= EXCLUDED.max_capacity
		RETURNING ` + windowColumns

	window, err := scanWindow(r.querier.QueryRow(ctx, query, date, slot.String(), slotStart, slotEnd, maxCapacity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrCapacityBelowCommitted
		}
		return nil, fmt.Errorf("unexpected capacity repository upsert error: %w", err)
	}

	return ToDomain(window), nil
}

func scanWindow(row pgx.Row) (*WindowDB, error) {
	var w WindowDB
	err := row.Scan(
		&w.ID,
		&w.Date,
		&w.Slot,
		&w.SlotStart,
		&w.SlotEnd,
		&w.MaxCapacity,
		&w.Committed,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
