package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// RoleHomes portada de cada rol. Se usa en las respuestas 403 para indicar
// a dónde regresar al usuario.
var RoleHomes = map[string]string{
	entity.RoleSuperAdmin: "/admin",
	entity.RoleVendor:     "/vendor",
	entity.RoleCustomer:   "/h5",
}

// HomeFor devuelve la portada del rol; la tienda para roles desconocidos.
func HomeFor(role string) string {
	if home, ok := RoleHomes[role]; ok {
		return home
	}
	return "/h5"
}

// loginURL arma el destino de login con la ruta original como retorno.
func loginURL(path string) string {
	return "/login?redirect=" + url.QueryEscape(path)
}

// AuthMiddleware valida el Bearer Token JWT y extrae usuario, nombre y rol
// a c.Locals. El 401 incluye login_url con la ruta pedida como retorno.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unauthorized := func(code, message string) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     code,
				Message:  message,
				LoginURL: loginURL(c.OriginalURL()),
			})
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized("MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized("INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized("MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized("INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol de la sesión no está en la lista.
// El 403 incluye el rol actual, los requeridos y la portada del rol actual.
// Una sesión sin rol recibe 401: el token no identifica al usuario.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "MISSING_ROLE",
				Message:  "la sesión no tiene rol asignado",
				LoginURL: loginURL(c.OriginalURL()),
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:          "FORBIDDEN",
			Message:       "el rol actual no tiene acceso a este recurso",
			CurrentRole:   role,
			RequiredRoles: roles,
			HomeURL:       HomeFor(role),
		})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserName devuelve el nombre del usuario del contexto.
func GetUserName(c *fiber.Ctx) string {
	v := c.Locals(LocalUserName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
