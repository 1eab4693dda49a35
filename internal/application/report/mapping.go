package report

import (
	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// ── Entidad → DTO ─────────────────────────────────────────────────────────────

func toClientSection(c *entity.Client) dto.ClientSectionDTO {
	out := dto.ClientSectionDTO{
		ID: c.ID.String(),
		Personal: dto.PersonalDTO{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
			PAN:         c.PAN,
			DateOfBirth: c.DateOfBirth,
			Occupation:  c.Occupation,
			City:        c.City,
			Status:      c.Status,
			ClientSince: c.CreatedAt,
		},
		Financial: dto.FinancialDTO{
			MonthlyIncome:   c.MonthlyIncome,
			MonthlyExpenses: c.MonthlyExpenses,
			MonthlySurplus:  c.MonthlyIncome.Sub(c.MonthlyExpenses),
			NetWorth:        c.NetWorth,
			RiskTolerance:   c.RiskTolerance,
			PortfolioValue:  c.PortfolioValue(),
		},
	}
	if c.CAS != nil {
		out.Financial.CAS = &dto.CASDTO{
			TotalValue:   c.CAS.TotalValue,
			MutualFunds:  c.CAS.MutualFunds,
			Equities:     c.CAS.Equities,
			HoldingCount: c.CAS.HoldingCount,
			StatementAt:  c.CAS.StatementAt,
		}
	}
	return out
}

func toBrandingDTO(b *entity.AdvisorBranding) *dto.BrandingDTO {
	if b == nil {
		return nil
	}
	return &dto.BrandingDTO{
		FirmName:     b.FirmName,
		LogoURL:      b.LogoURL,
		PrimaryColor: b.PrimaryColor,
		Tagline:      b.Tagline,
		Address:      b.Address,
		Website:      b.Website,
	}
}

func toOnboardingDTO(r *entity.OnboardingInvitation) dto.OnboardingRecordDTO {
	return dto.OnboardingRecordDTO{
		ID:          r.ID.String(),
		Email:       r.Email,
		Status:      r.Status,
		EmailCount:  r.EmailCount,
		SentAt:      r.SentAt,
		CompletedAt: r.CompletedAt,
		ExpiresAt:   r.ExpiresAt,
		CreatedAt:   r.CreatedAt,
	}
}

func toLetterDTO(r *entity.EngagementLetter) dto.EngagementLetterRecordDTO {
	services := r.Services
	if services == nil {
		services = []string{}
	}
	return dto.EngagementLetterRecordDTO{
		ID:        r.ID.String(),
		Status:    r.Status,
		Services:  services,
		SentAt:    r.SentAt,
		SignedAt:  r.SignedAt,
		CreatedAt: r.CreatedAt,
	}
}

func toPlanDTO(r *entity.FinancialPlan) dto.FinancialPlanRecordDTO {
	return dto.FinancialPlanRecordDTO{
		ID:         r.ID.String(),
		PlanType:   r.PlanType,
		Status:     r.Status,
		Version:    r.Version,
		Goals:      r.Goals,
		ReviewDate: r.ReviewDate,
		CreatedAt:  r.CreatedAt,
	}
}

func toMeetingDTO(r *entity.Meeting) dto.MeetingRecordDTO {
	return dto.MeetingRecordDTO{
		ID:                  r.ID.String(),
		Title:               r.Title,
		MeetingType:         r.MeetingType,
		Status:              r.Status,
		ScheduledAt:         r.ScheduledAt,
		DurationMinutes:     r.DurationMinutes,
		TranscriptAvailable: r.TranscriptAvailable,
		Summary:             r.Summary,
		CreatedAt:           r.CreatedAt,
	}
}

func toExitDTO(r *entity.MutualFundExitStrategy) dto.ExitStrategyRecordDTO {
	return dto.ExitStrategyRecordDTO{
		ID:             r.ID.String(),
		SchemeName:     r.SchemeName,
		FundCategory:   r.FundCategory,
		ExitAmount:     r.ExitAmount,
		ExitMethod:     r.ExitMethod,
		Priority:       r.Priority,
		Status:         r.Status,
		TargetExitDate: r.TargetExitDate,
		CreatedAt:      r.CreatedAt,
	}
}

func toTaxDTO(r *entity.TaxPlan) dto.TaxPlanRecordDTO {
	return dto.TaxPlanRecordDTO{
		ID:               r.ID.String(),
		TaxYear:          r.TaxYear,
		Regime:           r.Regime,
		Status:           r.Status,
		EstimatedSavings: r.EstimatedSavings,
		CreatedAt:        r.CreatedAt,
	}
}

func toChatDTO(r *entity.ChatConversation) dto.ChatRecordDTO {
	return dto.ChatRecordDTO{
		ID:            r.ID.String(),
		Title:         r.Title,
		Status:        r.Status,
		MessageCount:  r.MessageCount,
		LastMessageAt: r.LastMessageAt,
		CreatedAt:     r.CreatedAt,
	}
}

func toKYCDTO(r *entity.KYCVerification) dto.KYCRecordDTO {
	return dto.KYCRecordDTO{
		ID:            r.ID.String(),
		Provider:      r.Provider,
		OverallStatus: r.OverallStatus,
		AadharStatus:  r.AadharStatus,
		PANStatus:     r.PANStatus,
		VerifiedAt:    r.VerifiedAt,
		CreatedAt:     r.CreatedAt,
	}
}

// ── Estado por entidad (entrada de la tabla de activos) ───────────────────────

func onboardingStatus(r *entity.OnboardingInvitation) string { return r.Status }
func letterStatus(r *entity.EngagementLetter) string         { return r.Status }
func planStatus(r *entity.FinancialPlan) string              { return r.Status }
func meetingStatus(r *entity.Meeting) string                 { return r.Status }
func exitStatus(r *entity.MutualFundExitStrategy) string     { return r.Status }
func taxStatus(r *entity.TaxPlan) string                     { return r.Status }
func chatStatus(r *entity.ChatConversation) string           { return r.Status }
func kycStatus(r *entity.KYCVerification) string             { return r.OverallStatus }
