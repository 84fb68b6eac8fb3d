package timeblock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/pkg/psqlbuilder"
	"github.com/fotodesk/FD-ScheduleService/pkg/txmanager"
)

var timeBlockColumns = []string{"id", "staff_id", "booking_id", "start_at", "end_at", "type", "note"}

// Repository persists staff time-blocks in postgres.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a time-block repository over db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// List fetches time-blocks matching the filter, ordered by start time.
func (r *Repository) List(ctx context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(timeBlockColumns...).
		From("time_blocks").
		OrderBy("start_at ASC, id ASC")

	if len(filter.StaffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": filter.StaffIDs})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
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

	blocks := make([]*domain.TimeBlock, 0)
	for rows.Next() {
		var tb domain.TimeBlock
		if err := rows.Scan(&tb.ID, &tb.StaffID, &tb.BookingID, &tb.Start, &tb.End, &tb.Type, &tb.Note); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tb.Start = tb.Start.UTC()
		tb.End = tb.End.UTC()
		blocks = append(blocks, &tb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return blocks, nil
}

// GetByID fetches one time-block.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeBlockColumns...).
		From("time_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tb domain.TimeBlock
	row := executor.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&tb.ID, &tb.StaffID, &tb.BookingID, &tb.Start, &tb.End, &tb.Type, &tb.Note); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTimeBlockNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}
	tb.Start = tb.Start.UTC()
	tb.End = tb.End.UTC()
	return &tb, nil
}

// Create inserts a new time-block.
func (r *Repository) Create(ctx context.Context, tb *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_blocks").
		Columns("id", "staff_id", "booking_id", "start_at", "end_at", "type", "note").
		Values(tb.ID, tb.StaffID, tb.BookingID, tb.Start, tb.End, tb.Type, tb.Note).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return tb, nil
}

// Update applies a partial update. Nil fields keep their current value.
func (r *Repository) Update(ctx context.Context, id string, update domain.TimeBlockUpdate) error {
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("time_blocks").Where(squirrel.Eq{"id": id})
	if update.Start != nil {
		updateBuilder = updateBuilder.Set("start_at", *update.Start)
	}
	if update.End != nil {
		updateBuilder = updateBuilder.Set("end_at", *update.End)
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}
	if update.Note != nil {
		updateBuilder = updateBuilder.Set("note", *update.Note)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTimeBlockNotFound
	}
	return nil
}

// Delete removes a time-block.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTimeBlockNotFound
	}
	return nil
}
