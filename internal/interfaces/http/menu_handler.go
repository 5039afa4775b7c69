package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/menu"
)

// navTree árbol de navegación del back office. Los items sin AllowedRoles
// son visibles para cualquier sesión del panel.
var navTree = []menu.Item{
	{Title: "Inicio", URL: "/admin", Icon: "home"},
	{Title: "Catálogo", URL: "/admin/catalog", Icon: "tag", Children: []menu.Item{
		{Title: "Categorías", URL: "/admin/catalog/categories"},
		{Title: "Productos", URL: "/admin/catalog/products"},
	}},
	{Title: "Banners", URL: "/admin/banners", Icon: "image",
		AllowedRoles: []string{entity.RoleSuperAdmin}},
	{Title: "Órdenes", URL: "/admin/orders", Icon: "cart",
		AllowedRoles: []string{entity.RoleSuperAdmin, entity.RoleVendor}},
	{Title: "Usuarios", URL: "/admin/users", Icon: "users",
		AllowedRoles: []string{entity.RoleSuperAdmin}},
	{Title: "Código de pago", URL: "/admin/payment", Icon: "qrcode",
		AllowedRoles: []string{entity.RoleSuperAdmin}},
	{Title: "Registro de operaciones", URL: "/admin/logs", Icon: "list",
		AllowedRoles: []string{entity.RoleSuperAdmin}},
}

// menuEntry item del menú ya resuelto para la sesión: visibilidad por rol y
// estado activo/expandido según la ruta actual.
type menuEntry struct {
	Title    string      `json:"title"`
	URL      string      `json:"url"`
	Icon     string      `json:"icon,omitempty"`
	Active   bool        `json:"active"`
	Open     bool        `json:"open,omitempty"`
	Children []menuEntry `json:"children,omitempty"`
}

// MenuHandler expone el árbol de navegación filtrado por el rol de la sesión.
type MenuHandler struct{}

// NewMenuHandler construye el handler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// Get godoc
// @Summary      Menú de navegación filtrado por rol
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        path  query  string  false  "Ruta actual, para marcar el item activo"
// @Success      200  {array}  menuEntry
// @Router       /api/menu [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	role := GetRole(c)
	currentPath := c.Query("path")
	items := menu.Filter(navTree, role)
	return c.JSON(toEntries(items, currentPath))
}

func toEntries(items []menu.Item, currentPath string) []menuEntry {
	out := make([]menuEntry, 0, len(items))
	for _, item := range items {
		out = append(out, menuEntry{
			Title:    item.Title,
			URL:      item.URL,
			Icon:     item.Icon,
			Active:   menu.IsActive(currentPath, item),
			Open:     menu.InitiallyOpen(currentPath, item),
			Children: toEntries(item.Children, currentPath),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
