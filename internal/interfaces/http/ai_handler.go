package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/usecase"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
)

// AIHandler narrativa IA sobre el reporte del cliente.
type AIHandler struct {
	uc   *usecase.AIUseCase
	resp *Responder
}

// NewAIHandler construye el handler. uc nil → todas las peticiones responden 503.
func NewAIHandler(uc *usecase.AIUseCase, resp *Responder) *AIHandler {
	return &AIHandler{uc: uc, resp: resp}
}

// ReportInsights godoc
// @Summary      Narrativa IA sobre el reporte
// @Description  Envía al modelo un resumen sin datos personales y devuelve titular, puntos clave,
//               riesgos y próximos pasos. Timeout interno configurable (AI_TIMEOUT).
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        clientId   path  string  true  "ID del cliente (24 hex)"
// @Success      200  {object}  dto.Envelope{data=dto.ReportInsightsDTO}
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      408  {object}  dto.Envelope
// @Failure      503  {object}  dto.Envelope
// @Router       /api/report/{clientId}/insights [post]
func (h *AIHandler) ReportInsights(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return h.resp.Fail(c, "report.insights", c.Params("clientId"), err)
	}
	// API key no configurada
	if h.uc == nil {
		return h.resp.Fail(c, "report.insights", clientID.String(), domain.ErrAIUnavailable)
	}
	out, err := h.uc.ReportInsights(c.UserContext(), GetAdvisor(c), clientID)
	if err != nil {
		// Timeout del modelo → 408 vía context.DeadlineExceeded envuelto.
		return h.resp.Fail(c, "report.insights", clientID.String(), err)
	}
	return h.resp.OK(c, out)
}
