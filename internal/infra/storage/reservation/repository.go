package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/elegantcut/booking-service/internal/domain"
	"github.com/elegantcut/booking-service/pkg/psqlbuilder"
	"github.com/elegantcut/booking-service/pkg/types"
)

const uniqueViolation = "23505"

// Repository persists reservations in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation and fills in the generated id and
// timestamps. The partial unique index on active (staff_id,
// appointment_date, appointment_time) rows is the authority that a slot
// is taken; a violation maps to ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"client_name",
			"client_email",
			"client_phone",
			"service_id",
			"service_name",
			"service_price",
			"service_duration",
			"staff_id",
			"staff_name",
			"appointment_date",
			"appointment_time",
			"status",
			"notes",
		).
		Values(
			res.ClientName,
			res.ClientEmail,
			res.ClientPhone,
			res.ServiceID,
			res.ServiceName,
			res.ServicePrice,
			res.ServiceDuration,
			res.StaffID,
			res.StaffName,
			res.AppointmentDate,
			res.AppointmentTime,
			res.Status,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetBookedSlots returns the slots consumed by active reservations for a
// staff member on a date, in ascending time order.
func (r *Repository) GetBookedSlots(ctx context.Context, staffID string, date time.Time) ([]domain.BookedSlot, error) {
	query, args, err := psqlbuilder.Select(
		"appointment_time",
		"service_duration",
	).
		From("reservations").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		OrderBy("appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var slot domain.BookedSlot
		if err := rows.Scan(&slot.StartTime, &slot.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID fetches a reservation by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"client_name",
		"client_email",
		"client_phone",
		"service_id",
		"service_name",
		"service_price",
		"service_duration",
		"staff_id",
		"staff_name",
		"appointment_date",
		"appointment_time",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.ClientName,
		&res.ClientEmail,
		&res.ClientPhone,
		&res.ServiceID,
		&res.ServiceName,
		&res.ServicePrice,
		&res.ServiceDuration,
		&res.StaffID,
		&res.StaffName,
		&res.AppointmentDate,
		&res.AppointmentTime,
		&res.Status,
		&res.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// Cancel marks a reservation cancelled, freeing its slot for rebooking.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CompletePast marks confirmed reservations whose start has passed as
// completed. Returns the number of rows updated.
func (r *Repository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	currentTime := types.NewTimeString(now)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Or{
			squirrel.Lt{"appointment_date": today},
			squirrel.And{
				squirrel.Eq{"appointment_date": today},
				squirrel.Lt{"appointment_time": currentTime},
			},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func inactiveStatusStrings() []string {
	out := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		out[i] = string(s)
	}
	return out
}
