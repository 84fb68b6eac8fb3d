package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/pkg/psqlbuilder"
	"github.com/fotodesk/FD-ScheduleService/pkg/txmanager"
)

var bookingColumns = []string{
	"b.id",
	"b.title",
	"b.client_name",
	"b.location",
	"b.staff_id",
	"b.start_at",
	"b.end_at",
	"b.status",
	"b.notes",
	"b.email",
	"b.contact_number",
	"b.client_phone",
	"b.package_name",
	"b.created_at",
	"b.updated_at",
}

// Repository persists bookings in postgres.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a booking repository over db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. The id is expected to be minted by the
// caller (uuid string, matching the public API ids).
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"title",
			"client_name",
			"location",
			"staff_id",
			"start_at",
			"end_at",
			"status",
			"notes",
			"email",
			"contact_number",
			"client_phone",
			"package_name",
		).
		Values(
			b.ID,
			b.Title,
			b.ClientName,
			b.Location,
			b.StaffID,
			b.Start,
			b.End,
			b.Status,
			b.Notes,
			b.Email,
			b.ContactNumber,
			b.ClientPhone,
			b.PackageName,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}

// GetByID fetches one booking. Inside a managed transaction the row is
// locked FOR UPDATE so a reschedule reads a stable original placement.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// List fetches bookings matching the filter, ordered by start time.
//
// Free-text matching over title/client/location happens here with ILIKE so
// listings stay consistent with the in-memory matching of the week view.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b")

	if filter.StaffType != nil {
		selectBuilder = selectBuilder.
			Join("staff s ON s.id = b.staff_id").
			Where(squirrel.Eq{"s.staff_type": *filter.StaffType})
	}
	if len(filter.StaffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.staff_id": filter.StaffIDs})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.start_at": *filter.To})
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"b.title": like},
			squirrel.ILike{"b.client_name": like},
			squirrel.ILike{"b.location": like},
		})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("b.start_at ASC, b.id ASC")

	// Reads that feed an availability check inside a transaction lock the
	// matched rows until the verdict is committed.
	if txmanager.IsInTransaction(ctx) && filter.StaffType == nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update applies a partial update and reports whether the row existed.
func (r *Repository) Update(ctx context.Context, id string, update domain.BookingUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Title != nil {
		updateBuilder = updateBuilder.Set("title", *update.Title)
	}
	if update.ClientName != nil {
		updateBuilder = updateBuilder.Set("client_name", *update.ClientName)
	}
	if update.Location != nil {
		updateBuilder = updateBuilder.Set("location", *update.Location)
	}
	if update.StaffID != nil {
		updateBuilder = updateBuilder.Set("staff_id", *update.StaffID)
	}
	if update.Start != nil {
		updateBuilder = updateBuilder.Set("start_at", *update.Start)
	}
	if update.End != nil {
		updateBuilder = updateBuilder.Set("end_at", *update.End)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *update.Notes)
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
	}
	if update.ContactNumber != nil {
		updateBuilder = updateBuilder.Set("contact_number", *update.ContactNumber)
	}
	if update.ClientPhone != nil {
		updateBuilder = updateBuilder.Set("client_phone", *update.ClientPhone)
	}
	if update.PackageName != nil {
		updateBuilder = updateBuilder.Set("package_name", *update.PackageName)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return requireRow(result, "Update")
}

// UpdateStatus sets the status of one booking.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	return requireRow(result, "UpdateStatus")
}

// Delete removes a booking permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return requireRow(result, "Delete")
}

func requireRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.ClientName,
		&b.Location,
		&b.StaffID,
		&b.Start,
		&b.End,
		&b.Status,
		&b.Notes,
		&b.Email,
		&b.ContactNumber,
		&b.ClientPhone,
		&b.PackageName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
