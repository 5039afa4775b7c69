package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sms"
)

// SMSHandler maneja la emisión de códigos de verificación.
type SMSHandler struct {
	uc *sms.UseCase
}

// NewSMSHandler construye el handler.
func NewSMSHandler(uc *sms.UseCase) *SMSHandler {
	return &SMSHandler{uc: uc}
}

// SendCode godoc
// @Summary      Enviar código de verificación SMS
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendCodeRequest  true  "Teléfono y tipo (REGISTER o RESET)"
// @Success      200   {object}  dto.SendCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/sms/send [post]
func (h *SMSHandler) SendCode(c *fiber.Ctx) error {
	var in dto.SendCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.SendCode(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
