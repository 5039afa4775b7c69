package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type orderFixture struct {
	uc       *usecase.OrderUseCase
	orders   *fakeOrderRepo
	products *fakeProductRepo
	users    *fakeUserRepo
	logs     *fakeLogRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orders:   &fakeOrderRepo{},
		products: &fakeProductRepo{},
		users:    &fakeUserRepo{},
		logs:     &fakeLogRepo{},
	}
	tx := &fakeTxRunner{orders: f.orders, products: f.products, logs: f.logs}
	f.uc = usecase.NewOrderUseCase(f.orders, f.products, f.users, tx, fakeReceiptGen{})
	return f
}

func (f *orderFixture) seedProduct(t *testing.T, id string, price float64, active bool) {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{
		ID:     id,
		Name:   "Producto " + id,
		Price:  decimal.NewFromFloat(price),
		Status: active,
	}))
}

// Colocar una orden calcula el monto con el precio vigente y deja el
// registro de operación en la misma transacción.
func TestOrder_Place(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 25.50, true)

	out, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{
		ProductID: "prod-1",
		Quantity:  3,
		Remark:    "sin azúcar",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPaid, out.Status, "la orden nace en PAID")
	assert.True(t, decimal.NewFromFloat(76.50).Equal(out.Amount), "monto = precio * cantidad, got %s", out.Amount)
	assert.Equal(t, "sin azúcar", out.Remark)

	require.Len(t, f.logs.items, 1, "la colocación deja su registro de operación")
	assert.Equal(t, "user-1", f.logs.items[0].UserID)
	assert.Equal(t, "POST", f.logs.items[0].Method)
}

// Un producto oculto no se puede comprar y no deja rastro.
func TestOrder_PlaceProductoOculto(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 10, false)

	_, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.orders.items)
	assert.Empty(t, f.logs.items)
}

func TestOrder_PlaceProductoInexistente(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "nada", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Transiciones de estado: las válidas avanzan, las inválidas responden conflicto.
func TestOrder_UpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 10, true)
	placed, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)

	out, err := f.uc.UpdateStatus(placed.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderChecked})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderChecked, out.Status)

	_, err = f.uc.UpdateStatus(placed.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderCompleted})
	assert.ErrorIs(t, err, domain.ErrConflict, "CHECKED no puede saltar a COMPLETED")
}

func TestOrder_UpdateStatusInexistente(t *testing.T) {
	f := newOrderFixture(t)

	out, err := f.uc.UpdateStatus("nada", dto.UpdateOrderStatusRequest{Status: entity.OrderChecked})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Un comprador solo ve sus propias órdenes; el back office las ve todas.
func TestOrder_GetByIDPropiedad(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 10, true)
	placed, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)

	_, err = f.uc.GetByID(placed.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	mine, err := f.uc.GetByID(placed.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, placed.ID, mine.ID)

	admin, err := f.uc.GetByID(placed.ID, "")
	require.NoError(t, err)
	assert.Equal(t, placed.ID, admin.ID)
}

// El listado filtra por usuario y por estado.
func TestOrder_ListFiltros(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 10, true)
	for i := 0; i < 3; i++ {
		_, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
		require.NoError(t, err)
	}
	otra, err := f.uc.Place("user-2", "Luis", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(otra.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderChecked})
	require.NoError(t, err)

	mine, err := f.uc.List("user-1", dto.OrderListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, mine.Pagination.Total)

	all, err := f.uc.List("", dto.OrderListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Pagination.Total)

	checked, err := f.uc.List("", dto.OrderListRequest{Status: entity.OrderChecked})
	require.NoError(t, err)
	assert.Equal(t, 1, checked.Pagination.Total)
}

// El comprobante respeta la misma regla de propiedad que la consulta.
func TestOrder_Receipt(t *testing.T) {
	f := newOrderFixture(t)
	f.seedProduct(t, "prod-1", 10, true)
	require.NoError(t, f.users.Create(&entity.User{ID: "user-1", Phone: "13800000001", Name: "Ana"}))
	placed, err := f.uc.Place("user-1", "Ana", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)

	pdf, err := f.uc.Receipt(placed.ID, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = f.uc.Receipt(placed.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Receipt("nada", "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
