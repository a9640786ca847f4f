package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/dbmetrics"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"active",
		"hours",
		"created_at",
		"updated_at",
	).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var emp domain.Employee
	var hoursJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&emp.ID,
		&emp.BusinessID,
		&emp.Name,
		&emp.Active,
		&hoursJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %v", ErrScanRow, err)
	}

	if err := decodeHours(hoursJSON, &emp); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrDecodeHours, err)
	}

	emp.CreatedAt = createdAt.Time
	emp.UpdatedAt = updatedAt.Time

	return &emp, nil
}

// GetByBusinessID получает сотрудников бизнеса.
// activeOnly отсекает деактивированных сотрудников.
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"active",
		"hours",
		"created_at",
		"updated_at",
	).
		From("employees").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)

	for rows.Next() {
		var emp domain.Employee
		var hoursJSON []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&emp.ID,
			&emp.BusinessID,
			&emp.Name,
			&emp.Active,
			&hoursJSON,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusinessID - scan row: %v", ErrScanRow, err)
		}

		if err := decodeHours(hoursJSON, &emp); err != nil {
			return nil, fmt.Errorf("%w: GetByBusinessID: %v", ErrDecodeHours, err)
		}

		emp.CreatedAt = createdAt.Time
		emp.UpdatedAt = updatedAt.Time

		employees = append(employees, &emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// UpdateHours обновляет личное расписание сотрудника.
// hours == nil сбрасывает переопределение: сотрудник возвращается
// к часам бизнеса.
func (r *Repository) UpdateHours(ctx context.Context, id int64, hours *domain.WeekHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var hoursJSON interface{}
	if hours != nil {
		encoded, err := json.Marshal(hours)
		if err != nil {
			return fmt.Errorf("%w: UpdateHours - marshal hours: %v", ErrEncodeHours, err)
		}
		hoursJSON = encoded
	}

	query, args, err := psqlbuilder.Update("employees").
		Set("hours", hoursJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// decodeHours разбирает JSONB-колонку hours. NULL означает отсутствие
// личного переопределения.
func decodeHours(raw []byte, emp *domain.Employee) error {
	if len(raw) == 0 {
		emp.Hours = nil
		return nil
	}

	var hours domain.WeekHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return err
	}

	emp.Hours = &hours
	return nil
}
