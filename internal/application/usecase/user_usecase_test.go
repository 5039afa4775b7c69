package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func newUserFixture() (*usecase.UserUseCase, *fakeUserRepo, *fakeFavoriteRepo, *fakeOrderRepo) {
	users := &fakeUserRepo{}
	favs := &fakeFavoriteRepo{}
	orders := &fakeOrderRepo{}
	return usecase.NewUserUseCase(users, favs, orders), users, favs, orders
}

func TestUser_CreateHasheaPassword(t *testing.T) {
	uc, users, _, _ := newUserFixture()

	out, err := uc.Create(dto.CreateUserRequest{
		Phone:    "13800000001",
		Name:     "Ana",
		Password: "secreta-123",
		Role:     entity.RoleVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, out.Role)
	assert.True(t, out.Status, "los usuarios nacen habilitados")

	stored, err := users.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta-123")))
}

func TestUser_CreateRolDesconocido(t *testing.T) {
	uc, _, _, _ := newUserFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Phone:    "13800000001",
		Name:     "Ana",
		Password: "secreta-123",
		Role:     "ROOT",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUser_CreateTelefonoDuplicado(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	in := dto.CreateUserRequest{Phone: "13800000001", Name: "Ana", Password: "secreta-123", Role: entity.RoleCustomer}

	_, err := uc.Create(in)
	require.NoError(t, err)
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
}

// Update con password vacío conserva la contraseña actual.
func TestUser_UpdateSinPasswordConservaHash(t *testing.T) {
	uc, users, _, _ := newUserFixture()
	created, err := uc.Create(dto.CreateUserRequest{
		Phone: "13800000001", Name: "Ana", Password: "secreta-123", Role: entity.RoleCustomer,
	})
	require.NoError(t, err)
	before, _ := users.GetByID(created.ID)
	hashAntes := before.PasswordHash

	nombre := "Ana María"
	vacia := ""
	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Name: &nombre, Password: &vacia})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)

	after, _ := users.GetByID(created.ID)
	assert.Equal(t, hashAntes, after.PasswordHash)
}

// Los contadores publican siempre los cinco estados, con cero para los ausentes.
func TestUser_GetStats(t *testing.T) {
	uc, _, favs, orders := newUserFixture()

	require.NoError(t, favs.Create(&entity.Favorite{ID: "f1", UserID: "user-1", ProductID: "p1"}))
	require.NoError(t, favs.Create(&entity.Favorite{ID: "f2", UserID: "user-1", ProductID: "p2"}))
	require.NoError(t, favs.Create(&entity.Favorite{ID: "f3", UserID: "otro", ProductID: "p1"}))

	require.NoError(t, orders.Create(&entity.Order{ID: "o1", UserID: "user-1", Status: entity.OrderPaid}))
	require.NoError(t, orders.Create(&entity.Order{ID: "o2", UserID: "user-1", Status: entity.OrderPaid}))
	require.NoError(t, orders.Create(&entity.Order{ID: "o3", UserID: "user-1", Status: entity.OrderCompleted}))
	require.NoError(t, orders.Create(&entity.Order{ID: "o4", UserID: "otro", Status: entity.OrderPaid}))

	stats, err := uc.GetStats("user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FavoriteCount, "solo cuentan los favoritos propios")
	assert.Equal(t, 2, stats.OrderCounts[entity.OrderPaid])
	assert.Equal(t, 1, stats.OrderCounts[entity.OrderCompleted])
	assert.Equal(t, 0, stats.OrderCounts[entity.OrderCancelled], "los estados sin órdenes aparecen en cero")
	assert.Len(t, stats.OrderCounts, 5)
}
