package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
type LLMService interface {
	// GenerateReportInsights redacta una narrativa breve a partir del digest del reporte.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateReportInsights(ctx context.Context, digest ReportDigest) (*dto.ReportInsightsDTO, error)
}

// ReportDigest cifras del reporte que se envían al modelo.
// No contiene datos personales del cliente (nombre, email, PAN, teléfono).
type ReportDigest struct {
	RiskTolerance       string
	MonthlyIncome       decimal.Decimal
	MonthlyExpenses     decimal.Decimal
	MonthlySurplus      decimal.Decimal
	NetWorth            decimal.Decimal
	PortfolioValue      decimal.Decimal
	HasCAS              bool
	TotalServices       int
	ActiveServices      int
	UnavailableSections []string
	Sections            []SectionDigest
}

// SectionDigest conteos y estados de una sección.
type SectionDigest struct {
	Section     string
	Count       int
	ActiveCount int
	Statuses    map[string]int // estado → cantidad de registros
}
