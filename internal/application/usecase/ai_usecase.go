package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/ports"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// AIUseCase orquesta los insights del reporte asistidos por IA.
// Aplica un timeout propio a la llamada al LLM para que la latencia externa
// no bloquee los goroutines del servidor.
type AIUseCase struct {
	agg     *report.Aggregator
	llm     ports.LLMService
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso. llm nil deja los insights deshabilitados.
func NewAIUseCase(agg *report.Aggregator, llm ports.LLMService, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AIUseCase{agg: agg, llm: llm, timeout: timeout}
}

// ReportInsights compone el reporte y pide al LLM una narrativa sobre su resumen.
//
// Errores: los de Aggregator.Build, domain.ErrAIUnavailable si no hay proveedor
// configurado y context.DeadlineExceeded (envuelto) si el modelo no responde a tiempo.
func (uc *AIUseCase) ReportInsights(
	ctx context.Context,
	actor entity.AdvisorContext,
	clientID entity.ID,
) (*dto.ReportInsightsDTO, error) {
	if uc.llm == nil {
		return nil, domain.ErrAIUnavailable
	}

	r, err := uc.agg.Build(ctx, actor, clientID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result, err := uc.llm.GenerateReportInsights(ctx, NewReportDigest(r))
	if err != nil {
		return nil, fmt.Errorf("insights IA: %w", err)
	}
	result.ReportID = r.Header.ReportID
	if result.Highlights == nil {
		result.Highlights = []string{}
	}
	if result.Risks == nil {
		result.Risks = []string{}
	}
	if result.NextSteps == nil {
		result.NextSteps = []string{}
	}
	return result, nil
}

// NewReportDigest reduce el reporte a cifras sin datos personales.
func NewReportDigest(r *dto.ClientReportDTO) ports.ReportDigest {
	f := r.Client.Financial
	d := ports.ReportDigest{
		RiskTolerance:       f.RiskTolerance,
		MonthlyIncome:       f.MonthlyIncome,
		MonthlyExpenses:     f.MonthlyExpenses,
		MonthlySurplus:      f.MonthlySurplus,
		NetWorth:            f.NetWorth,
		PortfolioValue:      r.Summary.PortfolioValue,
		HasCAS:              f.CAS != nil,
		TotalServices:       r.Summary.TotalServices,
		ActiveServices:      r.Summary.ActiveServices,
		UnavailableSections: append([]string{}, r.Summary.UnavailableSections...),
	}

	s := r.Services
	statuses := map[string]map[string]int{
		string(report.SectionOnboarding):        countStatuses(s.Onboarding.Records, func(x dto.OnboardingRecordDTO) string { return x.Status }),
		string(report.SectionEngagementLetters): countStatuses(s.EngagementLetters.Records, func(x dto.EngagementLetterRecordDTO) string { return x.Status }),
		string(report.SectionFinancialPlans):    countStatuses(s.FinancialPlans.Records, func(x dto.FinancialPlanRecordDTO) string { return x.Status }),
		string(report.SectionMeetings):          countStatuses(s.Meetings.Records, func(x dto.MeetingRecordDTO) string { return x.Status }),
		string(report.SectionMFExitStrategies):  countStatuses(s.MFExitStrategies.Records, func(x dto.ExitStrategyRecordDTO) string { return x.Status }),
		string(report.SectionTaxPlanning):       countStatuses(s.TaxPlanning.Records, func(x dto.TaxPlanRecordDTO) string { return x.Status }),
		string(report.SectionChatHistory):       countStatuses(s.ChatHistory.Records, func(x dto.ChatRecordDTO) string { return x.Status }),
		string(report.SectionKYC):               countStatuses(s.KYC.Records, func(x dto.KYCRecordDTO) string { return x.OverallStatus }),
	}
	for _, b := range r.Summary.Breakdown {
		if b.Status != dto.SectionStatusOK {
			continue
		}
		d.Sections = append(d.Sections, ports.SectionDigest{
			Section:     b.Section,
			Count:       b.Count,
			ActiveCount: b.ActiveCount,
			Statuses:    statuses[b.Section],
		})
	}
	return d
}

func countStatuses[T any](records []T, status func(T) string) map[string]int {
	out := make(map[string]int, len(records))
	for _, r := range records {
		out[status(r)]++
	}
	return out
}
