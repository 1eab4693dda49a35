package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// ReportHandler reporte integral del cliente y sus derivados (resumen, PDF).
type ReportHandler struct {
	agg  *report.Aggregator
	pdf  *report.PDFUseCase
	resp *Responder
}

// NewReportHandler construye el handler. pdf es opcional.
func NewReportHandler(agg *report.Aggregator, pdf *report.PDFUseCase, resp *Responder) *ReportHandler {
	return &ReportHandler{agg: agg, pdf: pdf, resp: resp}
}

// GetReport godoc
// @Summary      Reporte integral del cliente
// @Description  Perfil del asesor, datos del cliente, las ocho secciones de servicio y el resumen.
//               Con un accessor caído la sección sale "unavailable" y el resto se entrega.
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        clientId   path  string  true  "ID del cliente (24 hex)"
// @Success      200  {object}  dto.Envelope{data=dto.ClientReportDTO}
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /api/report/{clientId} [get]
// @Router       /api/report/{advisorId}/{clientId} [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return h.resp.Fail(c, "report.get", c.Params("clientId"), err)
	}
	out, err := h.agg.Build(c.UserContext(), GetAdvisor(c), clientID)
	if err != nil {
		return h.resp.Fail(c, "report.get", clientID.String(), err)
	}
	return h.resp.OK(c, out)
}

// MissingClientID GET /api/report sin clientId: 400 en lugar de ruta inexistente.
func (h *ReportHandler) MissingClientID(c *fiber.Ctx) error {
	return h.resp.Fail(c, "report.get", "", fmt.Errorf("%w: clientId requerido", domain.ErrInvalidInput))
}

// GetSummary godoc
// @Summary      Resumen numérico del reporte
// @Description  Proyección del reporte completo: totales, valor de portafolio y desglose por sección.
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        clientId   path  string  true  "ID del cliente (24 hex)"
// @Success      200  {object}  dto.Envelope{data=dto.ReportSummaryViewDTO}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/report/{clientId}/summary [get]
// @Router       /api/report/{advisorId}/{clientId}/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return h.resp.Fail(c, "report.summary", c.Params("clientId"), err)
	}
	out, err := h.agg.BuildSummary(c.UserContext(), GetAdvisor(c), clientID)
	if err != nil {
		return h.resp.Fail(c, "report.summary", clientID.String(), err)
	}
	return h.resp.OK(c, out)
}

// DownloadPDF godoc
// @Summary      Descargar el reporte en PDF
// @Tags         report
// @Security     Bearer
// @Produce      application/pdf
// @Param        clientId   path  string  true  "ID del cliente (24 hex)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/report/{clientId}/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return h.resp.Fail(c, "report.pdf", c.Params("clientId"), err)
	}
	if h.pdf == nil {
		return h.resp.Fail(c, "report.pdf", clientID.String(), fmt.Errorf("generador PDF no configurado"))
	}
	b, filename, err := h.pdf.DownloadReportPDF(c.UserContext(), GetAdvisor(c), clientID)
	if err != nil {
		return h.resp.Fail(c, "report.pdf", clientID.String(), err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}

func clientIDParam(c *fiber.Ctx) (entity.ID, error) {
	id, err := entity.ParseID(c.Params("clientId"))
	if err != nil {
		return entity.ID{}, fmt.Errorf("%w: clientId: %v", domain.ErrInvalidInput, err)
	}
	return id, nil
}
