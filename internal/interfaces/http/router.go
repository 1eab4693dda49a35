package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/auth"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/application/usecase"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *usecase.ClientUseCase
	Aggregator *report.Aggregator
	ReportPDF  *report.PDFUseCase
	AIUC       *usecase.AIUseCase
	Health     *HealthHandler
	Responder  *Responder
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	resp := deps.Responder
	if resp == nil {
		resp = NewResponder(nil, true)
	}

	if deps.Health != nil {
		app.Get("/health", deps.Health.Live)
		app.Get("/health/ready", deps.Health.Ready)
	}

	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC, resp)
		authGroup := api.Group("/auth")
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdvisor, entity.RoleAdmin))

	if deps.ClientUC != nil {
		clientHandler := NewClientHandler(deps.ClientUC, resp)
		protected.Get("/clients", clientHandler.List)
	}

	// Reportes. Las rutas de dos segmentos con sufijo fijo van antes que
	// /:advisorId/:clientId, que de otro modo las capturaría.
	reportHandler := NewReportHandler(deps.Aggregator, deps.ReportPDF, resp)
	aiHandler := NewAIHandler(deps.AIUC, resp)
	guard := RequireAdvisorPath("advisorId", resp)
	reports := protected.Group("/report")
	reports.Get("/:clientId/summary", reportHandler.GetSummary)
	reports.Get("/:clientId/pdf", reportHandler.DownloadPDF)
	reports.Post("/:clientId/insights", aiHandler.ReportInsights)
	reports.Get("/:advisorId/:clientId/summary", guard, reportHandler.GetSummary)
	reports.Get("/:advisorId/:clientId", guard, reportHandler.GetReport)
	reports.Get("/:clientId", reportHandler.GetReport)
	reports.Get("/", reportHandler.MissingClientID)
}
