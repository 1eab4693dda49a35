// Package report contiene el agregador del reporte integral de cliente y sus
// vistas derivadas (resumen, PDF).
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

// Accessors puertos de lectura que consume el agregador. Ninguno depende de otro.
type Accessors struct {
	Clients    repository.ClientRepository
	Branding   repository.BrandingRepository
	Onboarding repository.OnboardingRepository
	Letters    repository.EngagementLetterRepository
	Plans      repository.FinancialPlanRepository
	Meetings   repository.MeetingRepository
	Exits      repository.ExitStrategyRepository
	Taxes      repository.TaxPlanRepository
	Chats      repository.ChatRepository
	KYC        repository.KYCRepository
}

// Options parámetros de ejecución del agregador.
type Options struct {
	SectionTimeout time.Duration // timeout de cada accessor
	MaxParallel    int           // consultas simultáneas por reporte
	AllowPartial   bool          // false: cualquier sección fallida aborta el reporte

	Now   func() time.Time // reloj (tests)
	NewID func() string    // generador de reportId (tests)
}

// Aggregator compone el reporte integral a partir de los accessors.
// No escribe en ningún almacén: cada llamada recalcula desde la fuente.
type Aggregator struct {
	acc  Accessors
	opts Options
	log  *logger.Logger
}

// NewAggregator construye el agregador aplicando valores por defecto a opts.
func NewAggregator(acc Accessors, opts Options, log *logger.Logger) *Aggregator {
	if opts.SectionTimeout <= 0 {
		opts.SectionTimeout = 5 * time.Second
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = len(ServiceSections) + 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregator{acc: acc, opts: opts, log: log}
}

// Build genera el reporte del cliente para el asesor autenticado.
//
// Pasos:
//  1. Resolver el cliente acotado por asesor; ausente → domain.ErrNotFound.
//  2. Fan-out de todos los accessors (timeout por accessor) y barrera de fan-in.
//  3. Calcular el resumen a partir de las secciones ya obtenidas.
//
// Errores: domain.ErrUnauthorized, domain.ErrInvalidInput, domain.ErrNotFound,
// domain.ErrAggregation (fallo de infraestructura o sección fallida en modo estricto).
func (a *Aggregator) Build(ctx context.Context, actor entity.AdvisorContext, clientID entity.ID) (*dto.ClientReportDTO, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if clientID.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	scope := actor.ScopeFor(clientID)
	log := a.log.Op("report.build", scope.AdvisorID.String(), scope.ClientID.String())

	// ── 1. Cliente ────────────────────────────────────────────────────────────
	client, err := callWithTimeout(ctx, a.opts.SectionTimeout, func(ctx context.Context) (*entity.Client, error) {
		return a.acc.Clients.GetForAdvisor(ctx, scope)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cliente: %w", domain.ErrAggregation, err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	report := &dto.ClientReportDTO{
		Header: dto.ReportHeaderDTO{
			ReportID:    a.opts.NewID(),
			GeneratedAt: a.opts.Now().UTC(),
			ClientName:  client.FullName(),
			Advisor: dto.AdvisorInfoDTO{
				ID:    scope.AdvisorID.String(),
				Email: actor.Email(),
			},
		},
		Client: toClientSection(client),
	}

	// ── 2. Fan-out ────────────────────────────────────────────────────────────
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.MaxParallel)

	run := func(section Section, fetch func(ctx context.Context) error) {
		g.Go(func() error {
			err := fetch(gctx)
			if err == nil {
				return nil
			}
			// En modo estricto el primer fallo cancela gctx: solo ese se registra.
			if gctx.Err() == nil || !errors.Is(err, context.Canceled) {
				log.Warn().Err(err).Str("section", string(section)).Msg("sección no disponible")
			}
			if a.opts.AllowPartial {
				return nil
			}
			return fmt.Errorf("%s: %w", section, err)
		})
	}

	svc := &report.Services
	to := a.opts.SectionTimeout
	run(SectionProfile, func(ctx context.Context) error {
		return a.collectProfile(ctx, scope.AdvisorID, &report.Header.Advisor)
	})
	run(SectionOnboarding, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionOnboarding, a.acc.Onboarding.ListByClient, onboardingStatus, toOnboardingDTO, &svc.Onboarding)
	})
	run(SectionEngagementLetters, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionEngagementLetters, a.acc.Letters.ListByClient, letterStatus, toLetterDTO, &svc.EngagementLetters)
	})
	run(SectionFinancialPlans, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionFinancialPlans, a.acc.Plans.ListByClient, planStatus, toPlanDTO, &svc.FinancialPlans)
	})
	run(SectionMeetings, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionMeetings, a.acc.Meetings.ListByClient, meetingStatus, toMeetingDTO, &svc.Meetings)
	})
	run(SectionMFExitStrategies, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionMFExitStrategies, a.acc.Exits.ListByClient, exitStatus, toExitDTO, &svc.MFExitStrategies)
	})
	run(SectionTaxPlanning, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionTaxPlanning, a.acc.Taxes.ListByClient, taxStatus, toTaxDTO, &svc.TaxPlanning)
	})
	run(SectionChatHistory, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionChatHistory, a.acc.Chats.ListByClient, chatStatus, toChatDTO, &svc.ChatHistory)
	})
	run(SectionKYC, func(ctx context.Context) error {
		return collect(ctx, to, scope, SectionKYC, a.acc.KYC.ListByClient, kycStatus, toKYCDTO, &svc.KYC)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAggregation, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAggregation, err)
	}

	// ── 3. Resumen ────────────────────────────────────────────────────────────
	report.Summary = summarize(report, client.PortfolioValue())
	if !report.Summary.Complete {
		log.Info().Strs("unavailable", report.Summary.UnavailableSections).Msg("reporte parcial")
	}
	return report, nil
}

// BuildSummary genera el reporte y devuelve solo su proyección de cifras,
// de modo que el resumen nunca diverge del reporte completo.
func (a *Aggregator) BuildSummary(ctx context.Context, actor entity.AdvisorContext, clientID entity.ID) (*dto.ReportSummaryViewDTO, error) {
	r, err := a.Build(ctx, actor, clientID)
	if err != nil {
		return nil, err
	}
	return Summarize(r), nil
}

// collectProfile resuelve el branding y el nombre visible del asesor.
func (a *Aggregator) collectProfile(ctx context.Context, advisorID entity.ID, out *dto.AdvisorInfoDTO) error {
	branding, err := callWithTimeout(ctx, a.opts.SectionTimeout, func(ctx context.Context) (*entity.AdvisorBranding, error) {
		return a.acc.Branding.GetByAdvisor(ctx, advisorID)
	})
	if err != nil {
		out.BrandingStatus = dto.SectionStatusUnavailable
		return err
	}
	out.BrandingStatus = dto.SectionStatusOK
	if branding != nil {
		out.Name = branding.AdvisorName
		if branding.AdvisorEmail != "" {
			out.Email = branding.AdvisorEmail
		}
		out.Branding = toBrandingDTO(branding)
	}
	return nil
}

// collect ejecuta un accessor con timeout y llena out. En error deja la sección
// como unavailable (Count 0, Records vacío) y devuelve el error.
func collect[E any, D any](
	ctx context.Context,
	timeout time.Duration,
	scope entity.Scope,
	section Section,
	list func(context.Context, entity.Scope) ([]*E, error),
	statusOf func(*E) string,
	toDTO func(*E) D,
	out *dto.SectionDTO[D],
) error {
	records, err := callWithTimeout(ctx, timeout, func(ctx context.Context) ([]*E, error) {
		return list(ctx, scope)
	})
	if err != nil {
		*out = unavailableSection[D](err)
		return err
	}

	s := dto.SectionDTO[D]{Status: dto.SectionStatusOK, Records: make([]D, 0, len(records))}
	for _, r := range records {
		if r == nil {
			continue
		}
		s.Records = append(s.Records, toDTO(r))
		if IsActive(section, statusOf(r)) {
			s.ActiveCount++
		}
	}
	s.Count = len(s.Records)
	*out = s
	return nil
}

func unavailableSection[D any](err error) dto.SectionDTO[D] {
	reason := dto.SectionReasonError
	if errors.Is(err, context.DeadlineExceeded) {
		reason = dto.SectionReasonTimeout
	}
	return dto.SectionDTO[D]{
		Status:  dto.SectionStatusUnavailable,
		Reason:  reason,
		Records: []D{},
	}
}

// callWithTimeout ejecuta fn con un deadline propio. Si fn ignora el contexto,
// se deja de esperar al vencer el deadline; el canal con buffer evita bloquear la goroutine.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		ch <- result{v, err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
