package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Build: camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// 3 reuniones + 2 planes → totalServices 5.
func TestBuild_CuentaServiciosDeTodasLasSecciones(t *testing.T) {
	f := newFixture()
	f.meetings.Records = []*entity.Meeting{meeting("completed"), meeting("scheduled"), meeting("completed")}
	f.plans.Records = []*entity.FinancialPlan{plan("active"), plan("draft")}

	r, err := f.aggregator(Options{AllowPartial: true}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.Equal(t, 5, r.Summary.TotalServices)
	assert.Equal(t, 3, r.Summary.ActiveServices, "2 reuniones completed + 1 plan active")
	assert.True(t, r.Summary.Complete)
	assert.Empty(t, r.Summary.UnavailableSections)

	assert.Equal(t, 3, r.Services.Meetings.Count)
	assert.Len(t, r.Services.Meetings.Records, 3)
	assert.Equal(t, 2, r.Services.Meetings.ActiveCount)
	assert.Equal(t, 2, r.Services.FinancialPlans.Count)
	assert.Equal(t, 1, r.Services.FinancialPlans.ActiveCount)

	assert.Equal(t, "Ravi Sharma", r.Header.ClientName)
	assert.Equal(t, fixedNow, r.Header.GeneratedAt)
	assert.NotEmpty(t, r.Header.ReportID)
	assert.Equal(t, advisorA.String(), r.Header.Advisor.ID)
	assert.Equal(t, "Anita Rao", r.Header.Advisor.Name)
	require.NotNil(t, r.Header.Advisor.Branding)
	assert.Equal(t, "Rao Wealth", r.Header.Advisor.Branding.FirmName)

	assert.Equal(t, "60000", r.Client.Financial.MonthlySurplus.String())
	assert.Equal(t, "2500000.5", r.Summary.PortfolioValue.String())
}

// Sin registros: todas las secciones ok con count 0 y arrays vacíos (no null).
func TestBuild_SinRegistros_ArraysVacios(t *testing.T) {
	f := newFixture()

	r, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Summary.TotalServices)
	assert.Equal(t, 0, r.Summary.ActiveServices)
	assert.True(t, r.Summary.Complete)
	require.Len(t, r.Summary.Breakdown, len(ServiceSections))
	for i, row := range r.Summary.Breakdown {
		assert.Equal(t, string(ServiceSections[i]), row.Section, "el desglose sigue el orden canónico")
		assert.Equal(t, dto.SectionStatusOK, row.Status)
		assert.Zero(t, row.Count)
	}

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	services := body["services"].(map[string]any)
	for _, name := range SectionNames() {
		sec := services[name].(map[string]any)
		assert.Equal(t, []any{}, sec["records"], "records de %s debe serializar como []", name)
		assert.EqualValues(t, 0, sec["count"])
	}
	summary := body["summary"].(map[string]any)
	assert.Equal(t, []any{}, summary["unavailableSections"])
}

// Los accessors reciben el asesor autenticado, nunca otro.
func TestBuild_AccessorsAcotadosPorAsesor(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	want := entity.Scope{ClientID: clientC, AdvisorID: advisorA}
	assert.Equal(t, want, f.meetings.LastScope())
	assert.Equal(t, want, f.kyc.LastScope())
	assert.Equal(t, want, f.chats.LastScope())
}

// Secuencial (MaxParallel 1) produce el mismo resultado que en paralelo.
func TestBuild_MaxParallelUno(t *testing.T) {
	f := newFixture()
	f.meetings.Records = []*entity.Meeting{meeting("completed")}

	r, err := f.aggregator(Options{MaxParallel: 1}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Summary.TotalServices)
}

// ──────────────────────────────────────────────────────────────────────────────
// Build: autorización y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_ClienteDeOtroAsesor_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorB), clientC)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.meetings.Calls(), "sin cliente no se consulta ningún servicio")
}

func TestBuild_ClienteInexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorA), entity.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuild_SinActor_Unauthorized(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).Build(context.Background(), entity.AdvisorContext{}, clientC)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBuild_ClientIDVacio_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorA), entity.ID{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuild_FalloAlResolverCliente_Aggregation(t *testing.T) {
	f := newFixture()
	f.clients.Err = errors.New("connection refused")

	_, err := f.aggregator(Options{AllowPartial: true}).Build(context.Background(), actorFor(advisorA), clientC)
	assert.ErrorIs(t, err, domain.ErrAggregation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Build: fallos parciales
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_Parcial_SeccionFallidaQuedaUnavailable(t *testing.T) {
	f := newFixture()
	f.meetings.Err = errors.New("cursor: connection reset")
	f.plans.Records = []*entity.FinancialPlan{plan("active"), plan("draft")}

	r, err := f.aggregator(Options{AllowPartial: true}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	m := r.Services.Meetings
	assert.Equal(t, dto.SectionStatusUnavailable, m.Status)
	assert.Equal(t, dto.SectionReasonError, m.Reason, "no se filtra el detalle interno")
	assert.Zero(t, m.Count)
	assert.NotNil(t, m.Records)
	assert.Empty(t, m.Records)

	assert.Equal(t, 2, r.Summary.TotalServices, "la sección fallida no suma")
	assert.False(t, r.Summary.Complete)
	assert.Equal(t, []string{"meetings"}, r.Summary.UnavailableSections)
}

func TestBuild_Parcial_TimeoutDeAccessor(t *testing.T) {
	f := newFixture()
	f.kyc.Delay = 300 * time.Millisecond

	start := time.Now()
	r, err := f.aggregator(Options{AllowPartial: true, SectionTimeout: 30 * time.Millisecond}).
		Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 250*time.Millisecond, "no se espera al accessor lento")
	assert.Equal(t, dto.SectionStatusUnavailable, r.Services.KYC.Status)
	assert.Equal(t, dto.SectionReasonTimeout, r.Services.KYC.Reason)
	assert.Equal(t, []string{"kyc"}, r.Summary.UnavailableSections)
}

func TestBuild_Parcial_BrandingNoDisponible(t *testing.T) {
	f := newFixture()
	f.branding.Err = errors.New("pg: timeout")
	f.meetings.Records = []*entity.Meeting{meeting("completed")}

	r, err := f.aggregator(Options{AllowPartial: true}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.Equal(t, dto.SectionStatusUnavailable, r.Header.Advisor.BrandingStatus)
	assert.Nil(t, r.Header.Advisor.Branding)
	assert.Equal(t, "advisor@firm.in", r.Header.Advisor.Email, "se conserva el email del token")
	assert.Equal(t, []string{"profile"}, r.Summary.UnavailableSections)
	assert.Equal(t, 1, r.Summary.TotalServices, "el perfil no cuenta como servicio")
}

func TestBuild_Estricto_SeccionFallidaAbortaReporte(t *testing.T) {
	f := newFixture()
	f.taxes.Err = errors.New("boom")

	r, err := f.aggregator(Options{AllowPartial: false}).Build(context.Background(), actorFor(advisorA), clientC)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domain.ErrAggregation)
}

// Las secciones canceladas por el primer fallo no se registran como caídas.
func TestBuild_Estricto_SoloRegistraLaSeccionQueFallo(t *testing.T) {
	f := newFixture()
	f.taxes.Err = errors.New("boom")
	f.meetings.Delay = 300 * time.Millisecond
	f.chats.Delay = 300 * time.Millisecond

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})
	agg := NewAggregator(f.accessors(), Options{
		SectionTimeout: 2 * time.Second,
		MaxParallel:    16,
		Now:            func() time.Time { return fixedNow },
	}, log)

	_, err := agg.Build(context.Background(), actorFor(advisorA), clientC)
	require.ErrorIs(t, err, domain.ErrAggregation)

	assert.Equal(t, 1, strings.Count(buf.String(), "sección no disponible"))
	assert.Contains(t, buf.String(), `"section":"taxPlanning"`)
	assert.NotContains(t, buf.String(), "context canceled")
}

func TestBuild_ContextoCancelado(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.aggregator(Options{AllowPartial: true}).Build(ctx, actorFor(advisorA), clientC)
	assert.ErrorIs(t, err, domain.ErrAggregation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia y proyección
// ──────────────────────────────────────────────────────────────────────────────

// Dos llamadas sobre los mismos datos difieren solo en el encabezado.
func TestBuild_Idempotente(t *testing.T) {
	f := newFixture()
	f.meetings.Records = []*entity.Meeting{meeting("completed"), meeting("cancelled")}
	agg := NewAggregator(f.accessors(), Options{}, nil)

	r1, err := agg.Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)
	r2, err := agg.Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.NotEqual(t, r1.Header.ReportID, r2.Header.ReportID)
	assert.Equal(t, r1.Client, r2.Client)
	assert.Equal(t, r1.Services, r2.Services)
	assert.Equal(t, r1.Summary, r2.Summary)
}

func TestBuildSummary_EsProyeccionDelReporte(t *testing.T) {
	f := newFixture()
	f.meetings.Records = []*entity.Meeting{meeting("completed")}
	f.chats.Err = errors.New("down")
	ids := []string{"r-1", "r-2"}
	n := 0
	agg := f.aggregator(Options{AllowPartial: true, NewID: func() string { n++; return ids[n-1] }})

	full, err := agg.Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)
	view, err := agg.BuildSummary(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	assert.Equal(t, "r-1", full.Header.ReportID)
	assert.Equal(t, "r-2", view.ReportID)
	assert.Equal(t, full.Summary, view.Summary)
	assert.Equal(t, clientC.String(), view.ClientID)
	assert.Equal(t, "Ravi Sharma", view.ClientName)
}

func TestSummarize_NoCompartePunteros(t *testing.T) {
	f := newFixture()
	r, err := f.aggregator(Options{}).Build(context.Background(), actorFor(advisorA), clientC)
	require.NoError(t, err)

	view := Summarize(r)
	view.Summary.Breakdown[0].Count = 99

	assert.Zero(t, r.Summary.Breakdown[0].Count)
}

func TestBuildSummary_PropagaNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator(Options{}).BuildSummary(context.Background(), actorFor(advisorB), clientC)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
