package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/menu"
)

func sampleTree() []menu.Item {
	return []menu.Item{
		{Title: "Inicio", URL: "/admin"},
		{Title: "Catálogo", URL: "/admin/catalog", Children: []menu.Item{
			{Title: "Productos", URL: "/admin/catalog/products"},
		}},
		{Title: "Usuarios", URL: "/admin/users", AllowedRoles: []string{"SUPERADMIN"}},
		{Title: "Órdenes", URL: "/admin/orders", AllowedRoles: []string{"SUPERADMIN", "VENDOR"}},
	}
}

// Un item sin AllowedRoles es visible para cualquier rol.
func TestFilter_ItemSinRolesEsVisibleParaTodos(t *testing.T) {
	out := menu.Filter(sampleTree(), "CUSTOMER")

	titles := make([]string, 0, len(out))
	for _, i := range out {
		titles = append(titles, i.Title)
	}
	assert.Equal(t, []string{"Inicio", "Catálogo"}, titles)
}

// Un item con AllowedRoles solo aparece para los roles listados.
func TestFilter_ItemRestringidoSoloParaSusRoles(t *testing.T) {
	superOut := menu.Filter(sampleTree(), "SUPERADMIN")
	assert.Len(t, superOut, 4, "SUPERADMIN ve todo el árbol")

	vendorOut := menu.Filter(sampleTree(), "VENDOR")
	titles := make([]string, 0, len(vendorOut))
	for _, i := range vendorOut {
		titles = append(titles, i.Title)
	}
	assert.Equal(t, []string{"Inicio", "Catálogo", "Órdenes"}, titles,
		"VENDOR no ve Usuarios pero sí Órdenes")
}

// Sin rol (sesión anónima) solo quedan los items abiertos.
func TestFilter_SinRolSoloItemsAbiertos(t *testing.T) {
	out := menu.Filter(sampleTree(), "")
	require.Len(t, out, 2)
	assert.Equal(t, "Inicio", out[0].Title)
}

// El filtrado preserva el orden del árbol fuente.
func TestFilter_PreservaOrden(t *testing.T) {
	out := menu.Filter(sampleTree(), "SUPERADMIN")
	require.Len(t, out, 4)
	assert.Equal(t, "Inicio", out[0].Title)
	assert.Equal(t, "Catálogo", out[1].Title)
	assert.Equal(t, "Usuarios", out[2].Title)
	assert.Equal(t, "Órdenes", out[3].Title)
}

// Filter no muta el árbol fuente.
func TestFilter_NoMutaElArbolFuente(t *testing.T) {
	tree := sampleTree()
	_ = menu.Filter(tree, "CUSTOMER")

	assert.Len(t, tree, 4, "el árbol fuente conserva todos sus items")
	assert.Len(t, tree[1].Children, 1)
}

// La visibilidad del padre gobierna a los hijos: los submenús no se re-filtran.
func TestFilter_HijosSiguenAlPadre(t *testing.T) {
	tree := []menu.Item{
		{Title: "Ventas", URL: "/admin/sales", AllowedRoles: []string{"VENDOR"}, Children: []menu.Item{
			{Title: "Órdenes", URL: "/admin/sales/orders", AllowedRoles: []string{"SUPERADMIN"}},
		}},
	}
	out := menu.Filter(tree, "VENDOR")
	require.Len(t, out, 1)
	assert.Len(t, out[0].Children, 1, "el hijo se conserva aunque su lista de roles no incluya VENDOR")
}

// Hojas: activo solo con igualdad exacta de ruta.
func TestIsActive_HojaRequiereIgualdadExacta(t *testing.T) {
	leaf := menu.Item{Title: "Productos", URL: "/admin/catalog/products"}

	assert.True(t, menu.IsActive("/admin/catalog/products", leaf))
	assert.False(t, menu.IsActive("/admin/catalog/products/123", leaf),
		"una hoja no se activa por prefijo")
}

// Padres con submenú: activos por prefijo mientras se navega una ruta hija.
func TestIsActive_PadreActivoPorPrefijo(t *testing.T) {
	parent := menu.Item{Title: "Catálogo", URL: "/admin/catalog", Children: []menu.Item{
		{Title: "Productos", URL: "/admin/catalog/products"},
	}}

	assert.True(t, menu.IsActive("/admin/catalog/products", parent))
	assert.False(t, menu.IsActive("/admin/orders", parent))
}

// El submenú arranca expandido cuando la ruta actual cae bajo su prefijo.
func TestInitiallyOpen(t *testing.T) {
	parent := menu.Item{Title: "Catálogo", URL: "/admin/catalog", Children: []menu.Item{
		{Title: "Productos", URL: "/admin/catalog/products"},
	}}
	leaf := menu.Item{Title: "Inicio", URL: "/admin"}

	assert.True(t, menu.InitiallyOpen("/admin/catalog/products", parent))
	assert.False(t, menu.InitiallyOpen("/admin/users", parent))
	assert.False(t, menu.InitiallyOpen("/admin", leaf), "una hoja nunca se expande")
}
