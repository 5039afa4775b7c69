package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// listParams traduce la paginación del DTO (con defaults aplicados) al puerto de persistencia.
func listParams(p dto.PageRequest) repository.ListParams {
	p.Defaults()
	return repository.ListParams{
		Page:     p.Page,
		PageSize: p.PageSize,
		OrderBy:  p.OrderBy,
		Order:    p.Order,
	}
}
