package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests orderClause — el ORDER BY es el único trozo de SQL que no puede
// parametrizarse, así que todo pasa por la whitelist del repositorio.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderClause(t *testing.T) {
	// json -> columna, como las whitelists reales de los repositorios
	sortable := map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	}

	tests := []struct {
		name string
		in   repository.ListParams
		want string
	}{
		{
			name: "columna conocida ascendente",
			in:   repository.ListParams{OrderBy: "name", Order: "asc"},
			want: "ORDER BY name ASC",
		},
		{
			name: "columna conocida descendente",
			in:   repository.ListParams{OrderBy: "name", Order: "desc"},
			want: "ORDER BY name DESC",
		},
		{
			name: "mapeo json a columna snake_case",
			in:   repository.ListParams{OrderBy: "createdAt", Order: "asc"},
			want: "ORDER BY created_at ASC",
		},
		{
			name: "direccion sin distinguir mayusculas",
			in:   repository.ListParams{OrderBy: "name", Order: "ASC"},
			want: "ORDER BY name ASC",
		},
		{
			name: "direccion desconocida cae a DESC",
			in:   repository.ListParams{OrderBy: "name", Order: "sideways"},
			want: "ORDER BY name DESC",
		},
		{
			name: "columna desconocida cae al orden por defecto",
			in:   repository.ListParams{OrderBy: "created_at; DROP TABLE categories;--", Order: "asc"},
			want: "ORDER BY created_at DESC",
		},
		{
			name: "orderBy vacio cae al orden por defecto",
			in:   repository.ListParams{},
			want: "ORDER BY created_at DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.in, sortable))
		})
	}
}

// La columna SQL sale de la whitelist, nunca del input: ningún valor de
// OrderBy puede inyectar texto propio en la consulta.
func TestOrderClause_SoloColumnasDeLaWhitelist(t *testing.T) {
	sortable := map[string]string{"name": "name"}

	for _, hostil := range []string{
		"name OR 1=1",
		"(SELECT password_hash FROM users)",
		"name--",
		"name,created_at",
	} {
		assert.Equal(t, "ORDER BY created_at DESC",
			orderClause(repository.ListParams{OrderBy: hostil, Order: "asc"}, sortable),
			"OrderBy hostil %q debe caer al orden por defecto", hostil)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests isUniqueViolation — detección del código 23505 de PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
