package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/upload"
)

// UploadHandler maneja la subida de imágenes y videos.
type UploadHandler struct {
	uc *upload.UseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *upload.UseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// UploadImage godoc
// @Summary      Subir una imagen
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadImageRequest  true  "Imagen base64 data-URI"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/uploads/image [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	var in dto.UploadImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UploadImage(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadImages godoc
// @Summary      Subir varias imágenes
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadImagesRequest  true  "Imágenes base64 data-URI"
// @Success      201   {object}  dto.UploadMultipleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/uploads/images [post]
func (h *UploadHandler) UploadImages(c *fiber.Ctx) error {
	var in dto.UploadImagesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UploadImages(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadVideo godoc
// @Summary      Subir un video
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadVideoRequest  true  "Video base64 data-URI"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/uploads/video [post]
func (h *UploadHandler) UploadVideo(c *fiber.Ctx) error {
	var in dto.UploadVideoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UploadVideo(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
