package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/auth"
)

// RequireAdvisorPath compara el :advisorId de la ruta con la identidad del token antes de
// cualquier acceso a datos. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 400 → identificador de ruta mal formado.
//   - 403 → el asesor de la ruta no es el autenticado (no revela si el recurso existe).
func RequireAdvisorPath(param string, resp *Responder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.AuthorizeAdvisorPath(GetAdvisor(c), c.Params(param)); err != nil {
			return resp.Fail(c, "advisor_guard", c.Params("clientId"), err)
		}
		return c.Next()
	}
}
