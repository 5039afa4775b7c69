package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para que los repositorios
// funcionen igual dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// orderClause construye el ORDER BY a partir de los parámetros de listado,
// validando la columna contra la whitelist del repositorio. OrderBy es el único
// trozo de SQL que no puede parametrizarse, de ahí la whitelist. Columna
// desconocida o vacía cae al orden por defecto created_at DESC.
func orderClause(params repository.ListParams, sortable map[string]string) string {
	col, ok := sortable[params.OrderBy]
	if !ok {
		return "ORDER BY created_at DESC"
	}
	dir := "DESC"
	if strings.EqualFold(params.Order, "asc") {
		dir = "ASC"
	}
	return "ORDER BY " + col + " " + dir
}
