package dto

// PageRequest paginación y orden para listados. Page es 1-based.
type PageRequest struct {
	Page     int    `query:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"pageSize" json:"pageSize" validate:"omitempty,min=1,max=100"`
	OrderBy  string `query:"orderBy" json:"orderBy"`
	Order    string `query:"order" json:"order" validate:"omitempty,oneof=asc desc"`
}

// Defaults aplica valores por defecto: página 1, 10 filas, tope 100.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageResponse calcula totalPages = ceil(total / pageSize).
func NewPageResponse(page, pageSize, total int) PageResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PageResponse{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// LoginURL se incluye en respuestas 401 de rutas protegidas: destino de
	// login con la ruta original como parámetro de retorno.
	LoginURL string `json:"login_url,omitempty"`
	// HomeURL se incluye en respuestas 403: portada acorde al rol actual.
	HomeURL string `json:"home_url,omitempty"`
	// CurrentRole y RequiredRoles se incluyen en respuestas 403.
	CurrentRole   string   `json:"current_role,omitempty"`
	RequiredRoles []string `json:"required_roles,omitempty"`
}

// SuccessResponse respuesta genérica de mutaciones sin cuerpo propio.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// DeleteManyRequest entrada del borrado masivo.
type DeleteManyRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// DeleteManyResponse salida del borrado masivo: cuántas filas se eliminaron.
type DeleteManyResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
