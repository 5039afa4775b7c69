package repository

// ListParams parámetros comunes de listado: paginación 1-based y orden.
// OrderBy vacío deja que el adaptador use su orden por defecto (created_at desc).
type ListParams struct {
	Page     int
	PageSize int
	OrderBy  string
	Order    string // "asc" | "desc"
}

// Offset calcula el offset SQL a partir de la página 1-based.
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}
