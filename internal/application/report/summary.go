package report

import (
	"github.com/shopspring/decimal"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
)

// summarize deriva el bloque de resumen de las secciones del propio reporte.
// totalServices y activeServices nunca se mantienen aparte: siempre salen de los arrays.
func summarize(r *dto.ClientReportDTO, portfolio decimal.Decimal) dto.ReportSummaryDTO {
	s := &r.Services
	rows := []dto.SectionBreakdownDTO{
		breakdown(SectionOnboarding, s.Onboarding),
		breakdown(SectionEngagementLetters, s.EngagementLetters),
		breakdown(SectionFinancialPlans, s.FinancialPlans),
		breakdown(SectionMeetings, s.Meetings),
		breakdown(SectionMFExitStrategies, s.MFExitStrategies),
		breakdown(SectionTaxPlanning, s.TaxPlanning),
		breakdown(SectionChatHistory, s.ChatHistory),
		breakdown(SectionKYC, s.KYC),
	}

	out := dto.ReportSummaryDTO{
		PortfolioValue:      portfolio,
		UnavailableSections: []string{},
		Breakdown:           rows,
	}
	for _, row := range rows {
		out.TotalServices += row.Count
		out.ActiveServices += row.ActiveCount
		if row.Status != dto.SectionStatusOK {
			out.UnavailableSections = append(out.UnavailableSections, row.Section)
		}
	}
	if r.Header.Advisor.BrandingStatus != dto.SectionStatusOK {
		out.UnavailableSections = append(out.UnavailableSections, string(SectionProfile))
	}
	out.Complete = len(out.UnavailableSections) == 0
	return out
}

func breakdown[T any](section Section, s dto.SectionDTO[T]) dto.SectionBreakdownDTO {
	status := s.Status
	if status == "" {
		status = dto.SectionStatusUnavailable
	}
	return dto.SectionBreakdownDTO{
		Section:     string(section),
		Status:      status,
		Count:       len(s.Records),
		ActiveCount: s.ActiveCount,
	}
}

// Summarize proyecta el reporte completo a la vista de solo cifras.
// Comparte el resumen ya calculado; no vuelve a aplicar reglas de negocio.
func Summarize(r *dto.ClientReportDTO) *dto.ReportSummaryViewDTO {
	summary := r.Summary
	summary.UnavailableSections = append([]string{}, r.Summary.UnavailableSections...)
	summary.Breakdown = append([]dto.SectionBreakdownDTO{}, r.Summary.Breakdown...)
	return &dto.ReportSummaryViewDTO{
		ReportID:    r.Header.ReportID,
		GeneratedAt: r.Header.GeneratedAt,
		ClientID:    r.Client.ID,
		ClientName:  r.Header.ClientName,
		Summary:     summary,
	}
}
