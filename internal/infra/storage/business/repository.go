package business

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/domain"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/dbmetrics"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бизнесами (тенантами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый бизнес
func (r *Repository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, err := json.Marshal(business.Hours)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal hours: %v", ErrEncodeHours, err)
	}

	query, args, err := psqlbuilder.Insert("businesses").
		Columns(
			"name",
			"slug",
			"midnight_mode_enabled",
			"hours",
			"manager_ids",
		).
		Values(
			business.Name,
			business.Slug,
			business.MidnightModeEnabled,
			hoursJSON,
			pq.Array(business.ManagerIDs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return business, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getByCondition(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает бизнес по человекочитаемому идентификатору
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	return r.getByCondition(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getByCondition(ctx context.Context, cond squirrel.Eq, op string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"midnight_mode_enabled",
		"hours",
		"manager_ids",
		"created_at",
		"updated_at",
	).
		From("businesses").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var business domain.Business
	var hoursJSON []byte
	var managerIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Slug,
		&business.MidnightModeEnabled,
		&hoursJSON,
		&managerIDs,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan business: %v", ErrScanRow, op, err)
	}

	if err := json.Unmarshal(hoursJSON, &business.Hours); err != nil {
		return nil, fmt.Errorf("%w: %s - unmarshal hours: %v", ErrDecodeHours, op, err)
	}

	business.ManagerIDs = []int64(managerIDs)
	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return &business, nil
}

// UpdateHours обновляет недельное расписание бизнеса и флаг ночного режима
func (r *Repository) UpdateHours(ctx context.Context, id int64, hours domain.WeekHours, midnightMode bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - marshal hours: %v", ErrEncodeHours, err)
	}

	query, args, err := psqlbuilder.Update("businesses").
		Set("hours", hoursJSON).
		Set("midnight_mode_enabled", midnightMode).
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
		return ErrBusinessNotFound
	}

	return nil
}
