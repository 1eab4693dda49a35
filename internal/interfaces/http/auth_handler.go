package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/auth"
	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
)

// AuthHandler maneja registro y login de asesores.
type AuthHandler struct {
	uc   *auth.AuthUseCase
	resp *Responder
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, resp *Responder) *AuthHandler {
	return &AuthHandler{uc: uc, resp: resp}
}

// Register godoc
// @Summary      Registrar asesor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "firstName, email, password (mín. 8), firmName"
// @Success      201   {object}  dto.Envelope{data=dto.AdvisorResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.RegisterAdvisor(c.UserContext(), in)
	if err != nil {
		return h.resp.Fail(c, "auth.register", "", err)
	}
	return h.resp.Created(c, out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "email y password son requeridos"))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.resp.Fail(c, "auth.login", "", err)
	}
	return h.resp.OK(c, out)
}
