package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
)

func sampleReport() *dto.ClientReportDTO {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	meetings := make([]dto.MeetingRecordDTO, 0, 12)
	for i := 0; i < 12; i++ {
		meetings = append(meetings, dto.MeetingRecordDTO{ID: "m", Title: "Revisión trimestral", Status: "completed", ScheduledAt: &now, CreatedAt: now})
	}
	return &dto.ClientReportDTO{
		Header: dto.ReportHeaderDTO{
			ReportID:    "c0ffee",
			GeneratedAt: now,
			ClientName:  "Ravi Sharma",
			Advisor: dto.AdvisorInfoDTO{
				ID:             "65a1f0c2e4b0a1b2c3d4e5a1",
				Name:           "Anita Rao",
				Email:          "anita@firm.in",
				Branding:       &dto.BrandingDTO{FirmName: "Rao Wealth", PrimaryColor: "#0f766e"},
				BrandingStatus: dto.SectionStatusOK,
			},
		},
		Client: dto.ClientSectionDTO{
			ID: "65a1f0c2e4b0a1b2c3d4e5c3",
			Personal: dto.PersonalDTO{
				FirstName:   "Ravi",
				LastName:    "Sharma",
				Email:       "ravi@example.com",
				Status:      "active",
				ClientSince: now.AddDate(-1, 0, 0),
			},
			Financial: dto.FinancialDTO{
				MonthlyIncome:  decimal.NewFromInt(150000),
				MonthlySurplus: decimal.NewFromInt(60000),
				PortfolioValue: decimal.NewFromInt(2500000),
				CAS:            &dto.CASDTO{TotalValue: decimal.NewFromInt(2500000), HoldingCount: 7},
			},
		},
		Services: dto.ServicesDTO{
			Meetings: dto.SectionDTO[dto.MeetingRecordDTO]{Status: dto.SectionStatusOK, Count: 12, ActiveCount: 12, Records: meetings},
			KYC:      dto.SectionDTO[dto.KYCRecordDTO]{Status: dto.SectionStatusUnavailable, Reason: dto.SectionReasonTimeout, Records: []dto.KYCRecordDTO{}},
		},
		Summary: dto.ReportSummaryDTO{
			TotalServices:       12,
			ActiveServices:      12,
			PortfolioValue:      decimal.NewFromInt(2500000),
			UnavailableSections: []string{"kyc"},
			Breakdown: []dto.SectionBreakdownDTO{
				{Section: "meetings", Status: dto.SectionStatusOK, Count: 12, ActiveCount: 12},
				{Section: "kyc", Status: dto.SectionStatusUnavailable},
			},
		},
	}
}

func TestGenerateReportPDF_ProduceDocumento(t *testing.T) {
	g := NewMarotoPDFGenerator()

	b, err := g.GenerateReportPDF(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateReportPDF_SinBranding(t *testing.T) {
	r := sampleReport()
	r.Header.Advisor.Branding = nil
	r.Header.Advisor.BrandingStatus = dto.SectionStatusUnavailable

	b, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), r)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestGenerateReportPDF_ReporteNil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateReportPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatINR(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "Rs 999", g.formatINR(decimal.RequireFromString("999.4")))
	assert.Contains(t, g.formatINR(decimal.NewFromInt(1000)), "1,000")
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#1e3a8a")
	require.True(t, ok)
	assert.Equal(t, 0x1e, c.Red)
	assert.Equal(t, 0x3a, c.Green)
	assert.Equal(t, 0x8a, c.Blue)

	_, ok = parseHexColor("blue")
	assert.False(t, ok)
}

func TestDetailSections_OrdenCanonico(t *testing.T) {
	secs := detailSections(sampleReport())
	require.Len(t, secs, 8)
	assert.Equal(t, "onboarding", secs[0].name)
	assert.Equal(t, "meetings", secs[3].name)
	assert.Len(t, secs[3].rows, 12)
	assert.Equal(t, "kyc", secs[7].name)
}
