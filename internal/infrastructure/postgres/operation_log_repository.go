package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.OperationLogRepository = (*OperationLogRepo)(nil)

var operationLogSortable = map[string]string{
	"method":    "method",
	"path":      "path",
	"createdAt": "created_at",
}

// OperationLogRepo implementación del puerto OperationLogRepository sobre PostgreSQL (usable con pool o tx).
type OperationLogRepo struct {
	q Querier
}

// NewOperationLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationLogRepository(q Querier) *OperationLogRepo {
	return &OperationLogRepo{q: q}
}

// Create persiste un registro de operación.
func (r *OperationLogRepo) Create(log *entity.OperationLog) error {
	query := `
		INSERT INTO operation_logs (id, user_id, user_name, method, path, status, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.UserID, log.UserName, log.Method, log.Path, log.Status, log.Detail, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation log: %w", err)
	}
	return nil
}

// List lista registros de operación con paginación y orden del lado del servidor.
func (r *OperationLogRepo) List(params repository.ListParams) ([]*entity.OperationLog, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM operation_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count operation logs: %w", err)
	}

	query := `
		SELECT id, user_id, user_name, method, path, status, detail, created_at
		FROM operation_logs ` + orderClause(params, operationLogSortable) + ` LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list operation logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.OperationLog
	for rows.Next() {
		var l entity.OperationLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserName, &l.Method, &l.Path, &l.Status,
			&l.Detail, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan operation log: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}

// DeleteMany elimina los registros con los IDs dados y devuelve cuántos borró.
func (r *OperationLogRepo) DeleteMany(ids []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM operation_logs WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete operation logs: %w", err)
	}
	return cmd.RowsAffected(), nil
}
