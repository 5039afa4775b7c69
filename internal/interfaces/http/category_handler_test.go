package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
)

// memCategoryRepo repositorio de categorías en memoria para los tests de handler.
type memCategoryRepo struct {
	items []*entity.Category
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.items = append(r.items, c)
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			r.items[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCategoryRepo) List(params repository.ListParams) ([]*entity.Category, int, error) {
	offset := params.Offset()
	if offset >= len(r.items) {
		return nil, len(r.items), nil
	}
	end := offset + params.PageSize
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[offset:end], len(r.items), nil
}

func (r *memCategoryRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCategoryRepo) DeleteMany(ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if err := r.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

func buildCategoryApp(repo *memCategoryRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))
	app.Post("/api/categories", h.Create)
	app.Get("/api/categories", h.List)
	app.Get("/api/categories/:id", h.GetByID)
	app.Delete("/api/categories", h.DeleteMany)
	app.Delete("/api/categories/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCategoryHandler_CreateYListContrato(t *testing.T) {
	repo := &memCategoryRepo{}
	app := buildCategoryApp(repo)

	for i := 0; i < 12; i++ {
		resp := postJSON(t, app, "/api/categories", map[string]string{
			"name": fmt.Sprintf("Categoría %02d", i),
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories?page=2&pageSize=10", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Contrato de listado: data + pagination con totalPages
	var body struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Page       int `json:"page"`
			PageSize   int `json:"pageSize"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 12, body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages, "ceil(12/10) = 2")
}

// La validación corta antes de tocar el caso de uso.
func TestCategoryHandler_CreateNombreCorto(t *testing.T) {
	repo := &memCategoryRepo{}
	app := buildCategoryApp(repo)

	resp := postJSON(t, app, "/api/categories", map[string]string{"name": "A"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.items, "nada debe persistirse")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["message"], "debe tener al menos 2 caracteres")
}

func TestCategoryHandler_GetInexistente(t *testing.T) {
	app := buildCategoryApp(&memCategoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// El borrado masivo responde cuántas filas se eliminaron de verdad.
func TestCategoryHandler_DeleteMany(t *testing.T) {
	repo := &memCategoryRepo{}
	app := buildCategoryApp(repo)

	var ids []string
	for i := 0; i < 3; i++ {
		resp := postJSON(t, app, "/api/categories", map[string]string{
			"name": fmt.Sprintf("Categoría %d", i),
		})
		var created map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		ids = append(ids, created["id"].(string))
	}

	body, err := json.Marshal(map[string]any{"ids": []string{ids[0], "fantasma"}})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/api/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, int64(1), out.Deleted)
	assert.Len(t, repo.items, 2)
}
