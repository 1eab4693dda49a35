package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/pkg/jwt"
)

// LocalAdvisor key de c.Locals con el entity.AdvisorContext de la petición.
const LocalAdvisor = "advisor"

// AuthMiddleware valida el Bearer Token JWT y deja el contexto del asesor en c.Locals.
// La identidad sale solo de los claims verificados, nunca de la ruta ni del cuerpo.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		advisorID, err := entity.ParseID(claims.AdvisorID)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token sin identidad de asesor")
		}
		c.Locals(LocalAdvisor, entity.NewAdvisorContext(advisorID, claims.Email, claims.Role))
		return c.Next()
	}
}

// RequireRole corta con 401 si el token no trae rol y con 403 si el rol no está permitido.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized(c, "MISSING_ROLE", "el token no incluye rol")
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "rol sin acceso a este recurso"))
		}
		return c.Next()
	}
}

// GetAdvisor devuelve el contexto del asesor autenticado (cero si no pasó por AuthMiddleware).
func GetAdvisor(c *fiber.Ctx) entity.AdvisorContext {
	actor, _ := c.Locals(LocalAdvisor).(entity.AdvisorContext)
	return actor
}

// GetRole rol del asesor autenticado.
func GetRole(c *fiber.Ctx) string {
	return GetAdvisor(c).Role()
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(code, message))
}
