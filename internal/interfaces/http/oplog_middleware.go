package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// operationRecorder es el contrato mínimo que necesita el middleware para
// registrar operaciones. Lo implementa *usecase.OperationLogUseCase; el uso
// de interfaz evita el import circular.
type operationRecorder interface {
	Record(userID, userName, method, path string, status int, detail string) error
}

// OperationLog devuelve un middleware que registra cada mutación del back
// office (POST, PUT, DELETE) con el usuario de la sesión y el código de
// respuesta. Debe usarse DESPUÉS de AuthMiddleware. Un fallo al registrar no
// afecta la respuesta al cliente; solo queda en el log del servidor.
func OperationLog(recorder operationRecorder, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		method := c.Method()
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodDelete {
			return err
		}

		status := c.Response().StatusCode()
		if recErr := recorder.Record(GetUserID(c), GetUserName(c), method, c.Path(), status, ""); recErr != nil {
			log.Error().Err(recErr).
				Str("method", method).
				Str("path", c.Path()).
				Msg("no se pudo registrar la operación")
		}
		return err
	}
}
