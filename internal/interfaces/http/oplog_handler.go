package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// OperationLogHandler consulta el registro de operaciones del back office.
type OperationLogHandler struct {
	uc *usecase.OperationLogUseCase
}

// NewOperationLogHandler construye el handler.
func NewOperationLogHandler(uc *usecase.OperationLogUseCase) *OperationLogHandler {
	return &OperationLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros de operación
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize  query  int     false  "Filas por página"  default(10)
// @Param        orderBy   query  string  false  "Campo de orden"
// @Param        order     query  string  false  "asc o desc"
// @Success      200  {object}  dto.OperationLogListResponse
// @Router       /api/admin/logs [get]
func (h *OperationLogHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteMany godoc
// @Summary      Eliminar registros seleccionados
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteManyRequest  true  "IDs a eliminar"
// @Success      200   {object}  dto.DeleteManyResponse
// @Router       /api/admin/logs [delete]
func (h *OperationLogHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.DeleteManyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	deleted, err := h.uc.DeleteMany(in.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteManyResponse{Success: true, Deleted: deleted})
}
