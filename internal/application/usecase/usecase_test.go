package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/ports"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository/repotest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	advisorA = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5a1")
	advisorB = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5b2")
	clientC  = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5c3")
	baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

func actor(id entity.ID) entity.AdvisorContext {
	return entity.NewAdvisorContext(id, "a@firm.in", entity.RoleAdvisor)
}

func newStore() *repotest.Store {
	s := repotest.NewStore()
	s.Clients.Put(&entity.Client{
		ID:              clientC,
		AdvisorID:       advisorA,
		FirstName:       "Ravi",
		LastName:        "Sharma",
		Email:           "ravi@example.com",
		PAN:             "ABCDE1234F",
		RiskTolerance:   "moderate",
		MonthlyIncome:   decimal.NewFromInt(100000),
		MonthlyExpenses: decimal.NewFromInt(40000),
		CAS:             &entity.CASSummary{TotalValue: decimal.NewFromInt(900000)},
		CreatedAt:       baseTime,
	})
	return s
}

func aggregatorFor(s *repotest.Store) *report.Aggregator {
	return report.NewAggregator(report.Accessors{
		Clients:    s.Clients,
		Branding:   s.Branding,
		Onboarding: s.Onboarding,
		Letters:    s.Letters,
		Plans:      s.Plans,
		Meetings:   s.Meetings,
		Exits:      s.Exits,
		Taxes:      s.Taxes,
		Chats:      s.Chats,
		KYC:        s.KYC,
	}, report.Options{AllowPartial: true}, nil)
}

type llmFake struct {
	got   ports.ReportDigest
	out   *dto.ReportInsightsDTO
	err   error
	block bool
}

func (l *llmFake) GenerateReportInsights(ctx context.Context, d ports.ReportDigest) (*dto.ReportInsightsDTO, error) {
	l.got = d
	if l.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ClientUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestClientList_SoloClientesDelAsesor(t *testing.T) {
	s := newStore()
	s.Clients.Put(&entity.Client{ID: entity.NewID(), AdvisorID: advisorB, FirstName: "Otro", CreatedAt: baseTime})
	s.Clients.Put(&entity.Client{ID: entity.NewID(), AdvisorID: advisorA, FirstName: "Meera", CreatedAt: baseTime.Add(time.Hour)})

	out, err := NewClientUseCase(s.Clients).List(context.Background(), actor(advisorA), dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Clients, 2)
	assert.Equal(t, "Meera", out.Clients[0].FirstName, "más recientes primero")
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, 20, out.Page.Limit)

	ravi := out.Clients[1]
	assert.True(t, ravi.HasCAS)
	assert.Equal(t, "900000", ravi.PortfolioValue.String())
	assert.Equal(t, report.SectionNames(), ravi.ReportSections)
	assert.Zero(t, s.Meetings.Calls(), "el listado no invoca accessors por servicio")
}

func TestClientList_Paginacion(t *testing.T) {
	s := newStore()
	for i := 0; i < 4; i++ {
		s.Clients.Put(&entity.Client{ID: entity.NewID(), AdvisorID: advisorA, CreatedAt: baseTime.Add(time.Duration(i+1) * time.Minute)})
	}

	out, err := NewClientUseCase(s.Clients).List(context.Background(), actor(advisorA), dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, out.Clients, 1)
	assert.Equal(t, 5, out.Page.Total)
}

func TestClientList_SinActor(t *testing.T) {
	_, err := NewClientUseCase(newStore().Clients).List(context.Background(), entity.AdvisorContext{}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClientList_ErrorDeAlmacen(t *testing.T) {
	s := newStore()
	s.Clients.Err = errors.New("mongo down")

	_, err := NewClientUseCase(s.Clients).List(context.Background(), actor(advisorA), dto.PageRequest{})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// AIUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestReportInsights_EnviaDigestSinPII(t *testing.T) {
	s := newStore()
	s.Meetings.Records = []*entity.Meeting{
		{ID: entity.NewID(), Status: "completed", CreatedAt: baseTime},
		{ID: entity.NewID(), Status: "scheduled", CreatedAt: baseTime},
	}
	llm := &llmFake{out: &dto.ReportInsightsDTO{Headline: "ok", Model: "m"}}
	uc := NewAIUseCase(aggregatorFor(s), llm, time.Second)

	out, err := uc.ReportInsights(context.Background(), actor(advisorA), clientC)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ReportID)
	assert.Equal(t, []string{}, out.Highlights)
	assert.Equal(t, []string{}, out.NextSteps)

	d := llm.got
	assert.Equal(t, 2, d.TotalServices)
	assert.Equal(t, 1, d.ActiveServices)
	assert.Equal(t, "moderate", d.RiskTolerance)
	assert.Equal(t, "60000", d.MonthlySurplus.String())
	assert.True(t, d.HasCAS)
	require.Len(t, d.Sections, 8)
	for _, sec := range d.Sections {
		if sec.Section == "meetings" {
			assert.Equal(t, map[string]int{"completed": 1, "scheduled": 1}, sec.Statuses)
		}
	}
	dump := fmt.Sprintf("%+v", d)
	assert.NotContains(t, dump, "Ravi")
	assert.NotContains(t, dump, "ABCDE1234F")
}

func TestReportInsights_SeccionNoDisponibleNoSeEnvia(t *testing.T) {
	s := newStore()
	s.KYC.Err = errors.New("down")
	llm := &llmFake{out: &dto.ReportInsightsDTO{Headline: "ok"}}

	_, err := NewAIUseCase(aggregatorFor(s), llm, time.Second).ReportInsights(context.Background(), actor(advisorA), clientC)
	require.NoError(t, err)
	assert.Len(t, llm.got.Sections, 7)
	assert.Equal(t, []string{"kyc"}, llm.got.UnavailableSections)
}

func TestReportInsights_SinProveedor(t *testing.T) {
	_, err := NewAIUseCase(aggregatorFor(newStore()), nil, 0).ReportInsights(context.Background(), actor(advisorA), clientC)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestReportInsights_ClienteAjeno(t *testing.T) {
	llm := &llmFake{}
	_, err := NewAIUseCase(aggregatorFor(newStore()), llm, time.Second).ReportInsights(context.Background(), actor(advisorB), clientC)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, llm.got.TotalServices)
}

func TestReportInsights_Timeout(t *testing.T) {
	llm := &llmFake{block: true}
	_, err := NewAIUseCase(aggregatorFor(newStore()), llm, 20*time.Millisecond).ReportInsights(context.Background(), actor(advisorA), clientC)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

