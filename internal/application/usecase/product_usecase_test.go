package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *fakeFavoriteRepo) {
	prodRepo := &fakeProductRepo{}
	favRepo := &fakeFavoriteRepo{}
	return usecase.NewProductUseCase(prodRepo, favRepo), prodRepo, favRepo
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, name string, active bool) string {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		CategoryID: "cat-1",
		Name:       name,
		Price:      decimal.NewFromFloat(19.90),
		Status:     &active,
	})
	require.NoError(t, err)
	return out.ID
}

func TestProduct_PrecioNegativoRechazado(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		CategoryID: "cat-1",
		Name:       "Inválido",
		Price:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La vitrina solo lista productos visibles; el back office lista todos.
func TestProduct_ListVitrinaOcultaInactivos(t *testing.T) {
	uc, _, _ := newProductUC()
	createProduct(t, uc, "Visible", true)
	createProduct(t, uc, "Oculto", false)

	vitrina, err := uc.List(dto.ProductListRequest{}, true)
	require.NoError(t, err)
	require.Len(t, vitrina.Data, 1)
	assert.Equal(t, "Visible", vitrina.Data[0].Name)

	admin, err := uc.List(dto.ProductListRequest{}, false)
	require.NoError(t, err)
	assert.Len(t, admin.Data, 2)
}

func TestAddFavorite(t *testing.T) {
	uc, _, favRepo := newProductUC()
	productID := createProduct(t, uc, "Café", true)

	out, err := uc.AddFavorite("user-1", productID)
	require.NoError(t, err)
	assert.Equal(t, productID, out.ProductID)
	assert.Equal(t, "Café", out.Product.Name)
	assert.Len(t, favRepo.items, 1)
}

// Marcar dos veces el mismo producto no duplica: devuelve el existente.
func TestAddFavorite_Idempotente(t *testing.T) {
	uc, _, favRepo := newProductUC()
	productID := createProduct(t, uc, "Café", true)

	first, err := uc.AddFavorite("user-1", productID)
	require.NoError(t, err)
	second, err := uc.AddFavorite("user-1", productID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, favRepo.items, 1, "no debe duplicarse el favorito")
}

func TestAddFavorite_ProductoInexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.AddFavorite("user-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El listado omite favoritos cuyo producto fue borrado después.
func TestListFavorites_OmiteProductosBorrados(t *testing.T) {
	uc, _, _ := newProductUC()
	keepID := createProduct(t, uc, "Queda", true)
	goneID := createProduct(t, uc, "Se borra", true)

	_, err := uc.AddFavorite("user-1", keepID)
	require.NoError(t, err)
	_, err = uc.AddFavorite("user-1", goneID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(goneID))

	out, err := uc.ListFavorites("user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, keepID, out[0].ProductID)
}

// racyFavoriteRepo simula la carrera entre dos peticiones del mismo usuario:
// la primera lectura no ve el favorito, pero el INSERT choca con el duplicado
// ya escrito. El error llega envuelto, como lo devuelve un adaptador real.
type racyFavoriteRepo struct {
	*fakeFavoriteRepo
	misses int
}

func (r *racyFavoriteRepo) GetByUserAndProduct(userID, productID string) (*entity.Favorite, error) {
	if r.misses > 0 {
		r.misses--
		return nil, nil
	}
	return r.fakeFavoriteRepo.GetByUserAndProduct(userID, productID)
}

func (r *racyFavoriteRepo) Create(f *entity.Favorite) error {
	if err := r.fakeFavoriteRepo.Create(f); err != nil {
		return fmt.Errorf("insertar favorito: %w", err)
	}
	return nil
}

func TestAddFavorite_CarreraConDuplicadoEnvuelto(t *testing.T) {
	prodRepo := &fakeProductRepo{}
	inner := &fakeFavoriteRepo{}
	favRepo := &racyFavoriteRepo{fakeFavoriteRepo: inner}
	uc := usecase.NewProductUseCase(prodRepo, favRepo)
	productID := createProduct(t, uc, "Café", true)

	// El favorito ya fue escrito por la petición que ganó la carrera
	inner.items = append(inner.items, &entity.Favorite{
		ID:        "fav-ganador",
		UserID:    "user-1",
		ProductID: productID,
	})
	favRepo.misses = 1

	out, err := uc.AddFavorite("user-1", productID)
	require.NoError(t, err)
	assert.Equal(t, "fav-ganador", out.ID, "debe devolver el favorito que ganó la carrera")
	assert.Len(t, inner.items, 1, "no debe crearse una segunda fila")
}

// Quitar un favorito ajeno se rechaza con acceso denegado.
func TestDeleteFavorite_SoloElDueno(t *testing.T) {
	uc, _, _ := newProductUC()
	productID := createProduct(t, uc, "Café", true)

	fav, err := uc.AddFavorite("user-1", productID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteFavorite("user-2", fav.ID), domain.ErrForbidden)
	assert.NoError(t, uc.DeleteFavorite("user-1", fav.ID))
	assert.ErrorIs(t, uc.DeleteFavorite("user-1", fav.ID), domain.ErrNotFound)
}
