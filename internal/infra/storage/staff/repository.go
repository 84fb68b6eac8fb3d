package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/pkg/psqlbuilder"
	"github.com/fotodesk/FD-ScheduleService/pkg/txmanager"
)

var staffColumns = []string{"id", "name", "staff_type", "color", "active"}

// Repository persists staff members in postgres.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a staff repository over db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// List fetches staff members, optionally restricted to active ones.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Staff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff").
		OrderBy("name ASC, id ASC")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
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

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.StaffType, &s.Color, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return staff, nil
}

// GetByID fetches one staff member.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.StaffType, &s.Color, &s.Active)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}
	return &s, nil
}
