package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"scheduler/internal/entities"
	"scheduler/internal/repository"
	"scheduler/internal/service/schedule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const scheduleColumns = `id, order_ref, scheduled_date, time_slot, start_at, end_at,
		delivery_type, priority, status, distributor_ref,
		contact_person, contact_phone, contact_email, contact_address,
		delivery_fee_cents, confirmation_token, confirmed_at, confirmation_notes,
		customer_notes, instructions, status_reason, rescheduled_from_id,
		created_at, updated_at`

var scheduleColumnList = []string{
	"id", "order_ref", "scheduled_date", "time_slot", "start_at", "end_at",
	"delivery_type", "priority", "status", "distributor_ref",
	"contact_person", "contact_phone", "contact_email", "contact_address",
	"delivery_fee_cents", "confirmation_token", "confirmed_at", "confirmation_notes",
	"customer_notes", "instructions", "status_reason", "rescheduled_from_id",
	"created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, scheduleEntity entities.DeliverySchedule) (*entities.DeliverySchedule, error) {
	scheduleModel := FromDomain(&scheduleEntity)

	query := `
		INSERT INTO delivery_schedules (
			order_ref, scheduled_date, time_slot, start_at, end_at,
			delivery_type, priority, status, distributor_ref,
			contact_person, contact_phone, contact_email, contact_address,
			delivery_fee_cents, confirmation_token, confirmation_notes,
			customer_notes, instructions, rescheduled_from_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + scheduleColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		scheduleModel.OrderRef,
		scheduleModel.ScheduledDate,
		scheduleModel.TimeSlot,
		scheduleModel.StartAt,
		scheduleModel.EndAt,
		scheduleModel.DeliveryType,
		scheduleModel.Priority,
		scheduleModel.Status,
		scheduleModel.DistributorRef,
		scheduleModel.ContactPerson,
		scheduleModel.ContactPhone,
		scheduleModel.ContactEmail,
		scheduleModel.ContactAddress,
		scheduleModel.DeliveryFeeCents,
		scheduleModel.ConfirmationToken,
		scheduleModel.ConfirmationNotes,
		scheduleModel.CustomerNotes,
		scheduleModel.Instructions,
		scheduleModel.RescheduledFromID,
	)

	created, err := scanSchedule(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, schedule.ErrOrderAlreadyScheduled
		}
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliverySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules
		WHERE id = $1
	`

	found, err := scanSchedule(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get error: %w", err)
	}

	return ToDomain(found), nil
}

func (r *Repository) GetByToken(ctx context.Context, token string) (*entities.DeliverySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules
		WHERE confirmation_token = $1
	`

	found, err := scanSchedule(r.querier.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get by token error: %w", err)
	}

	return ToDomain(found), nil
}

func (r *Repository) GetActiveByOrderRef(ctx context.Context, orderRef string) (*entities.DeliverySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules
		WHERE order_ref = $1
		AND status = ANY($2)
	`

	found, err := scanSchedule(r.querier.QueryRow(ctx, query, orderRef, statusStrings(entities.ActiveStatuses)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get active error: %w", err)
	}

	return ToDomain(found), nil
}

// UpdateStatus меняет статус только из ожидаемого состояния from; ноль
// затронутых строк отдается как ErrScheduleNotFound.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from entities.ScheduleStatus, modify entities.ScheduleModify) (*entities.DeliverySchedule, error) {
	builder := qb.
		Update("delivery_schedules").
		Set("updated_at", sq.Expr("NOW()"))

	// опциональные поля
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.DistributorRef != nil {
		builder = builder.Set("distributor_ref", *modify.DistributorRef)
	}
	if modify.ConfirmedAt != nil {
		builder = builder.Set("confirmed_at", *modify.ConfirmedAt)
	}
	if modify.ConfirmationNotes != nil {
		builder = builder.Set("confirmation_notes", *modify.ConfirmationNotes)
	}
	if modify.StatusReason != nil {
		builder = builder.Set("status_reason", *modify.StatusReason)
	}

	builder = builder.
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": from.String()}).
		Suffix("RETURNING " + scheduleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository build update error: %w", err)
	}

	updated, err := scanSchedule(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository update error: %w", err)
	}

	return ToDomain(updated), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ScheduleFilter) ([]entities.DeliverySchedule, error) {
	builder := qb.
		Select(scheduleColumnList...).
		From("delivery_schedules")

	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusStrings(filter.Statuses)})
	}
	if filter.OrderRef != "" {
		builder = builder.Where(sq.Eq{"order_ref": filter.OrderRef})
	}
	if filter.DistributorRef != "" {
		builder = builder.Where(sq.Eq{"distributor_ref": filter.DistributorRef})
	}
	if !filter.DateFrom.IsZero() {
		builder = builder.Where(sq.GtOrEq{"scheduled_date": filter.DateFrom})
	}
	if !filter.DateTo.IsZero() {
		builder = builder.Where(sq.LtOrEq{"scheduled_date": filter.DateTo})
	}
	if filter.Slot != "" {
		builder = builder.Where(sq.Eq{"time_slot": filter.Slot.String()})
	}
	if filter.DeliveryType != "" {
		builder = builder.Where(sq.Eq{"delivery_type": filter.DeliveryType.String()})
	}

	builder = builder.OrderBy("scheduled_date ASC", "start_at ASC", "id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository build list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list error: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// ListOverdue возвращает расписания с истекшим окном доставки, еще не
// переведенные в терминальный статус.
func (r *Repository) ListOverdue(ctx context.Context, deadline time.Time) ([]entities.DeliverySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules
		WHERE status = ANY($1)
		AND end_at < $2
		ORDER BY end_at ASC, id ASC
	`

	sweepable := []entities.ScheduleStatus{entities.StatusScheduled, entities.StatusConfirmed}
	rows, err := r.querier.Query(ctx, query, statusStrings(sweepable), deadline)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list overdue error: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func (r *Repository) ListActiveByDistributorOnDate(ctx context.Context, distributorRef string, date time.Time) ([]entities.DeliverySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM delivery_schedules
		WHERE distributor_ref = $1
		AND scheduled_date = $2
		AND status = ANY($3)
		ORDER BY start_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, distributorRef, date, statusStrings(entities.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list by distributor error: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func scanSchedule(row pgx.Row) (*ScheduleDB, error) {
	var s ScheduleDB
	err := row.Scan(
		&s.ID,
		&s.OrderRef,
		&s.ScheduledDate,
		&s.TimeSlot,
		&s.StartAt,
		&s.EndAt,
		&s.DeliveryType,
		&s.Priority,
		&s.Status,
		&s.DistributorRef,
		&s.ContactPerson,
		&s.ContactPhone,
		&s.ContactEmail,
		&s.ContactAddress,
		&s.DeliveryFeeCents,
		&s.ConfirmationToken,
		&s.ConfirmedAt,
		&s.ConfirmationNotes,
		&s.CustomerNotes,
		&s.Instructions,
		&s.StatusReason,
		&s.RescheduledFromID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSchedules(rows pgx.Rows) ([]entities.DeliverySchedule, error) {
	schedules := make([]entities.DeliverySchedule, 0)
	for rows.Next() {
		scheduleModel, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan error: %w", err)
		}
		schedules = append(schedules, *ToDomain(scheduleModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository rows error: %w", err)
	}
	return schedules, nil
}

func statusStrings(statuses []entities.ScheduleStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}
	return values
}
