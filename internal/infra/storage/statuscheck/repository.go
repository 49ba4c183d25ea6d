package statuscheck

import (
	"context"
	"fmt"

	"github.com/m04kA/qwiky-admin-proxy/internal/domain"
	"github.com/m04kA/qwiky-admin-proxy/pkg/psqlbuilder"
)

const tableName = "status_checks"

// Repository репозиторий status check записей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись (только вставка, записи не изменяются)
func (r *Repository) Create(ctx context.Context, check *domain.StatusCheck) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "client_name", "created_at").
		Values(check.ID, check.ClientName, check.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает до limit записей без явной сортировки
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	query, args, err := psqlbuilder.Select("id", "client_name", "created_at").
		From(tableName).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	checks := make([]*domain.StatusCheck, 0)
	for rows.Next() {
		var check domain.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		check.Timestamp = check.Timestamp.UTC()
		checks = append(checks, &check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return checks, nil
}
