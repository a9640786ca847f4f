package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/dbmetrics"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs получает услуги по списку идентификаторов.
// Порядок результата совпадает с порядком запрошенных ID.
// Если хотя бы одна услуга не найдена, возвращается ErrServiceNotFound.
func (r *Repository) GetByIDs(ctx context.Context, businessID int64, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"duration_minutes",
		"buffer_minutes",
		"price",
		"employee_ids",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := r.scanServices(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	ordered := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: GetByIDs - id %d", ErrServiceNotFound, id)
		}
		ordered = append(ordered, s)
	}

	return ordered, nil
}

// GetByBusinessID получает услуги бизнеса.
// activeOnly отсекает снятые с продажи услуги.
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"duration_minutes",
		"buffer_minutes",
		"price",
		"employee_ids",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
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

	return r.scanServices(rows)
}

// scanServices сканирует результаты запроса в слайс услуг
func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service
		var employeeIDs pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.BusinessID,
			&svc.Name,
			&svc.DurationMinutes,
			&svc.BufferMinutes,
			&svc.Price,
			&employeeIDs,
			&svc.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}

		svc.EmployeeIDs = []int64(employeeIDs)
		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
