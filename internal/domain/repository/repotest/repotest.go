// Package repotest implementaciones en memoria de los puertos de repository para tests.
// Permiten inyectar errores y latencia por accessor.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

// ── Registros por servicio ────────────────────────────────────────────────────

// List accessor genérico de registros por servicio.
// Delay ignora el contexto a propósito: simula un accessor que no coopera con la cancelación.
type List[E any] struct {
	mu      sync.Mutex
	Records []*E
	Err     error
	Delay   time.Duration
	scopes  []entity.Scope
}

// ListByClient devuelve Records tal cual (el filtrado por scope es responsabilidad del test).
func (l *List[E]) ListByClient(_ context.Context, scope entity.Scope) ([]*E, error) {
	l.mu.Lock()
	l.scopes = append(l.scopes, scope)
	records, err, delay := l.Records, l.Err, l.Delay
	l.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []*E{}, nil
	}
	return records, nil
}

// Calls número de invocaciones recibidas.
func (l *List[E]) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.scopes)
}

// LastScope último scope recibido (cero si no hubo llamadas).
func (l *List[E]) LastScope() entity.Scope {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.scopes) == 0 {
		return entity.Scope{}
	}
	return l.scopes[len(l.scopes)-1]
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// Clients repositorio de clientes en memoria.
type Clients struct {
	mu      sync.Mutex
	clients map[entity.ID]*entity.Client
	Err     error
}

var _ repository.ClientRepository = (*Clients)(nil)

// NewClients crea el repositorio con los clientes dados.
func NewClients(cs ...*entity.Client) *Clients {
	r := &Clients{clients: make(map[entity.ID]*entity.Client, len(cs))}
	for _, c := range cs {
		r.Put(c)
	}
	return r
}

// Put agrega o reemplaza un cliente.
func (r *Clients) Put(c *entity.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = c
}

func (r *Clients) GetForAdvisor(_ context.Context, scope entity.Scope) (*entity.Client, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[scope.ClientID]
	if !ok || c.AdvisorID != scope.AdvisorID {
		return nil, nil
	}
	return c, nil
}

func (r *Clients) ListByAdvisor(_ context.Context, advisorID entity.ID, limit, offset int) ([]*entity.Client, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	all := r.byAdvisor(advisorID)
	if offset >= len(all) {
		return []*entity.Client{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *Clients) CountByAdvisor(_ context.Context, advisorID entity.ID) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return len(r.byAdvisor(advisorID)), nil
}

// byAdvisor mismo orden que el almacén real: createdAt descendente, desempate por id.
func (r *Clients) byAdvisor(advisorID entity.ID) []*entity.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Client, 0)
	for _, c := range r.clients {
		if c.AdvisorID == advisorID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// ── Asesores y branding ───────────────────────────────────────────────────────

// Advisors repositorio de asesores en memoria; email único sin distinguir mayúsculas.
type Advisors struct {
	mu   sync.Mutex
	byID map[entity.ID]*entity.Advisor
	Err  error
}

var _ repository.AdvisorRepository = (*Advisors)(nil)

// NewAdvisors crea el repositorio vacío.
func NewAdvisors() *Advisors {
	return &Advisors{byID: make(map[entity.ID]*entity.Advisor)}
}

func (r *Advisors) Create(_ context.Context, a *entity.Advisor) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, a.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *Advisors) GetByID(_ context.Context, id entity.ID) (*entity.Advisor, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *Advisors) GetByEmail(_ context.Context, email string) (*entity.Advisor, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// Branding repositorio de branding en memoria.
type Branding struct {
	mu    sync.Mutex
	byID  map[entity.ID]*entity.AdvisorBranding
	Err   error
	Delay time.Duration
}

var _ repository.BrandingRepository = (*Branding)(nil)

// NewBranding crea el repositorio con los perfiles dados.
func NewBranding(bs ...*entity.AdvisorBranding) *Branding {
	r := &Branding{byID: make(map[entity.ID]*entity.AdvisorBranding)}
	for _, b := range bs {
		r.byID[b.AdvisorID] = b
	}
	return r
}

func (r *Branding) Upsert(_ context.Context, b *entity.AdvisorBranding) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.byID[b.AdvisorID] = &cp
	return nil
}

func (r *Branding) GetByAdvisor(_ context.Context, advisorID entity.ID) (*entity.AdvisorBranding, error) {
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[advisorID]
	if !ok {
		return nil, nil
	}
	return b, nil
}

// ── Store ─────────────────────────────────────────────────────────────────────

// Store agrupa todos los repositorios en memoria.
type Store struct {
	Advisors   *Advisors
	Branding   *Branding
	Clients    *Clients
	Onboarding *List[entity.OnboardingInvitation]
	Letters    *List[entity.EngagementLetter]
	Plans      *List[entity.FinancialPlan]
	Meetings   *List[entity.Meeting]
	Exits      *List[entity.MutualFundExitStrategy]
	Taxes      *List[entity.TaxPlan]
	Chats      *List[entity.ChatConversation]
	KYC        *List[entity.KYCVerification]
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Advisors:   NewAdvisors(),
		Branding:   NewBranding(),
		Clients:    NewClients(),
		Onboarding: &List[entity.OnboardingInvitation]{},
		Letters:    &List[entity.EngagementLetter]{},
		Plans:      &List[entity.FinancialPlan]{},
		Meetings:   &List[entity.Meeting]{},
		Exits:      &List[entity.MutualFundExitStrategy]{},
		Taxes:      &List[entity.TaxPlan]{},
		Chats:      &List[entity.ChatConversation]{},
		KYC:        &List[entity.KYCVerification]{},
	}
}
