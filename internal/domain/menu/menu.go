// Package menu define el árbol de navegación declarativo del back office y
// su filtrado por rol. El árbol fuente es inmutable: Filter devuelve copias.
package menu

import "strings"

// Item es un elemento del menú. Un Item sin AllowedRoles es visible para todos;
// con AllowedRoles, solo para los roles listados. La visibilidad del padre
// gobierna a todos sus hijos (los submenús no se re-filtran por separado).
type Item struct {
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Icon         string   `json:"icon,omitempty"`
	AllowedRoles []string `json:"-"`
	Children     []Item   `json:"children,omitempty"`
}

// visible indica si el item aplica al rol dado.
func (i Item) visible(role string) bool {
	if len(i.AllowedRoles) == 0 {
		return true
	}
	if role == "" {
		return false
	}
	for _, r := range i.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Filter devuelve los items del árbol visibles para el rol, preservando el
// orden del árbol fuente. No muta tree.
func Filter(tree []Item, role string) []Item {
	out := make([]Item, 0, len(tree))
	for _, item := range tree {
		if !item.visible(role) {
			continue
		}
		copied := item
		if len(item.Children) > 0 {
			children := make([]Item, len(item.Children))
			copy(children, item.Children)
			copied.Children = children
		}
		out = append(out, copied)
	}
	return out
}

// IsActive indica si el item debe resaltarse para la ruta actual:
// igualdad exacta para hojas, prefijo para items con submenú (así el padre
// sigue activo mientras se navega una ruta hija).
func IsActive(currentPath string, item Item) bool {
	if len(item.Children) == 0 {
		return currentPath == item.URL
	}
	return strings.HasPrefix(currentPath, item.URL)
}

// InitiallyOpen indica si el submenú del item debe arrancar expandido:
// abierto cuando la ruta actual ya cae bajo su prefijo.
func InitiallyOpen(currentPath string, item Item) bool {
	if len(item.Children) == 0 {
		return false
	}
	return strings.HasPrefix(currentPath, item.URL)
}
