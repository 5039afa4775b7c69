package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/storage"
)

// MediaHandler sirve los archivos subidos bajo /uploads/*. Las imágenes de
// productos y banners se referencian por estas URLs desde la tienda.
type MediaHandler struct {
	store *storage.Local
}

// NewMediaHandler construye el handler.
func NewMediaHandler(store *storage.Local) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve godoc
// @Summary      Servir un archivo subido
// @Tags         uploads
// @Produce      octet-stream
// @Param        path  path  string  true  "Ruta relativa del archivo"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /uploads/{path} [get]
func (h *MediaHandler) Serve(c *fiber.Ctx) error {
	rel := strings.TrimPrefix(c.Params("*"), "/")
	if rel == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
	}
	data, err := h.store.Read(rel)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, storage.ContentTypeFor(rel))
	// Los nombres generados son únicos e inmutables: cache larga.
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Send(data)
}
