package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientListItem cliente en GET /api/clients.
// ReportSections es un indicador estático de las secciones que cubre el reporte;
// no consulta los registros por servicio.
type ClientListItem struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Status         string          `json:"status"`
	PortfolioValue decimal.Decimal `json:"portfolioValue"`
	HasCAS         bool            `json:"hasCas"`
	ReportSections []string        `json:"reportSections"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ClientListResponse página de clientes del asesor.
type ClientListResponse struct {
	Clients []ClientListItem `json:"clients"`
	Page    PageResponse     `json:"page"`
}
