package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository/repotest"
)

// ── Fixture ───────────────────────────────────────────────────────────────────

var (
	advisorA = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5a1")
	advisorB = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5b2")
	clientC  = entity.MustParseID("65a1f0c2e4b0a1b2c3d4e5c3")
	fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	store *repotest.Store

	clients  *repotest.Clients
	branding *repotest.Branding
	plans    *repotest.List[entity.FinancialPlan]
	meetings *repotest.List[entity.Meeting]
	taxes    *repotest.List[entity.TaxPlan]
	chats    *repotest.List[entity.ChatConversation]
	kyc      *repotest.List[entity.KYCVerification]
}

// newFixture cliente C de advisor A, sin registros de servicio.
func newFixture() *fixture {
	s := repotest.NewStore()
	s.Clients.Put(&entity.Client{
		ID:              clientC,
		AdvisorID:       advisorA,
		FirstName:       "Ravi",
		LastName:        "Sharma",
		Email:           "ravi@example.com",
		Status:          "active",
		MonthlyIncome:   decimal.NewFromInt(150000),
		MonthlyExpenses: decimal.NewFromInt(90000),
		CAS:             &entity.CASSummary{TotalValue: decimal.RequireFromString("2500000.50")},
		CreatedAt:       fixedNow.AddDate(-1, 0, 0),
	})
	s.Branding = repotest.NewBranding(&entity.AdvisorBranding{
		AdvisorID:    advisorA,
		AdvisorName:  "Anita Rao",
		AdvisorEmail: "anita@firm.in",
		FirmName:     "Rao Wealth",
	})
	return &fixture{
		store:    s,
		clients:  s.Clients,
		branding: s.Branding,
		plans:    s.Plans,
		meetings: s.Meetings,
		taxes:    s.Taxes,
		chats:    s.Chats,
		kyc:      s.KYC,
	}
}

func (f *fixture) accessors() Accessors {
	s := f.store
	return Accessors{
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
	}
}

func (f *fixture) aggregator(opts Options) *Aggregator {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	return NewAggregator(f.accessors(), opts, nil)
}

func actorFor(id entity.ID) entity.AdvisorContext {
	return entity.NewAdvisorContext(id, "advisor@firm.in", entity.RoleAdvisor)
}

func meeting(status string) *entity.Meeting {
	return &entity.Meeting{ID: entity.NewID(), ClientID: clientC, AdvisorID: advisorA, Title: "Revisión", Status: status, CreatedAt: fixedNow}
}

func plan(status string) *entity.FinancialPlan {
	return &entity.FinancialPlan{ID: entity.NewID(), ClientID: clientC, AdvisorID: advisorA, PlanType: "cash_flow", Status: status, CreatedAt: fixedNow}
}
