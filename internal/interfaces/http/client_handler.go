package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/usecase"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
)

// ClientHandler listado de clientes del asesor autenticado.
type ClientHandler struct {
	uc   *usecase.ClientUseCase
	resp *Responder
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, resp *Responder) *ClientHandler {
	return &ClientHandler{uc: uc, resp: resp}
}

// List godoc
// @Summary      Listar clientes del asesor
// @Description  No consulta registros por servicio; reportSections es un indicador estático.
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo 100 (por defecto 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Envelope{data=dto.ClientListResponse}
// @Failure      401  {object}  dto.Envelope
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return h.resp.Fail(c, "clients.list", "", domain.ErrInvalidInput)
	}
	out, err := h.uc.List(c.UserContext(), GetAdvisor(c), page)
	if err != nil {
		return h.resp.Fail(c, "clients.list", "", err)
	}
	return h.resp.OK(c, out)
}
