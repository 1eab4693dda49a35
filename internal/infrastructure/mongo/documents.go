package mongo

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// Documentos tal como están en las colecciones. Los montos se guardan como Number
// (float64) y se convierten a decimal al pasar a dominio.

// ── Cliente ───────────────────────────────────────────────────────────────────

type clientDoc struct {
	ID                   bson.ObjectID `bson:"_id"`
	Advisor              bson.ObjectID `bson:"advisor"`
	FirstName            string        `bson:"firstName"`
	LastName             string        `bson:"lastName"`
	Email                string        `bson:"email"`
	PhoneNumber          string        `bson:"phoneNumber,omitempty"`
	PANNumber            string        `bson:"panNumber,omitempty"`
	DateOfBirth          *time.Time    `bson:"dateOfBirth,omitempty"`
	Occupation           string        `bson:"occupation,omitempty"`
	Address              *addressDoc   `bson:"address,omitempty"`
	Status               string        `bson:"status"`
	TotalMonthlyIncome   float64       `bson:"totalMonthlyIncome"`
	TotalMonthlyExpenses float64       `bson:"totalMonthlyExpenses"`
	NetWorth             float64       `bson:"netWorth"`
	RiskProfile          *riskDoc      `bson:"enhancedRiskProfile,omitempty"`
	CASData              *casDoc       `bson:"casData,omitempty"`
	CreatedAt            time.Time     `bson:"createdAt"`
	UpdatedAt            time.Time     `bson:"updatedAt"`
}

type addressDoc struct {
	City  string `bson:"city,omitempty"`
	State string `bson:"state,omitempty"`
}

type riskDoc struct {
	RiskTolerance string `bson:"riskTolerance,omitempty"`
}

type casDoc struct {
	StatementDate *time.Time     `bson:"statementDate,omitempty"`
	ParsedAt      *time.Time     `bson:"parsedAt,omitempty"`
	Summary       *casSummaryDoc `bson:"summary,omitempty"`
}

type casSummaryDoc struct {
	TotalValue       float64 `bson:"totalValue"`
	MutualFundsValue float64 `bson:"mutualFundsValue"`
	EquitiesValue    float64 `bson:"equitiesValue"`
	HoldingCount     int     `bson:"holdingCount"`
}

func (d *clientDoc) toEntity() *entity.Client {
	c := &entity.Client{
		ID:              idFrom(d.ID),
		AdvisorID:       idFrom(d.Advisor),
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		PhoneNumber:     d.PhoneNumber,
		PAN:             d.PANNumber,
		DateOfBirth:     d.DateOfBirth,
		Occupation:      d.Occupation,
		Status:          d.Status,
		MonthlyIncome:   money(d.TotalMonthlyIncome),
		MonthlyExpenses: money(d.TotalMonthlyExpenses),
		NetWorth:        money(d.NetWorth),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Address != nil {
		c.City = d.Address.City
	}
	if d.RiskProfile != nil {
		c.RiskTolerance = d.RiskProfile.RiskTolerance
	}
	// Un CAS subido pero aún sin parsear no tiene summary: se trata como ausente.
	if d.CASData != nil && d.CASData.Summary != nil {
		s := d.CASData.Summary
		c.CAS = &entity.CASSummary{
			TotalValue:   money(s.TotalValue),
			MutualFunds:  money(s.MutualFundsValue),
			Equities:     money(s.EquitiesValue),
			HoldingCount: s.HoldingCount,
			StatementAt:  d.CASData.StatementDate,
			ParsedAt:     d.CASData.ParsedAt,
		}
	}
	return c
}

// ── Registros por servicio ────────────────────────────────────────────────────

type invitationDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	ClientID    bson.ObjectID `bson:"clientId"`
	AdvisorID   bson.ObjectID `bson:"advisorId"`
	Email       string        `bson:"clientEmail"`
	Status      string        `bson:"status"`
	EmailCount  int           `bson:"emailCount"`
	SentAt      *time.Time    `bson:"sentAt,omitempty"`
	OpenedAt    *time.Time    `bson:"openedAt,omitempty"`
	CompletedAt *time.Time    `bson:"completedAt,omitempty"`
	ExpiresAt   *time.Time    `bson:"expiresAt,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d *invitationDoc) toEntity() *entity.OnboardingInvitation {
	return &entity.OnboardingInvitation{
		ID:          idFrom(d.ID),
		ClientID:    idFrom(d.ClientID),
		AdvisorID:   idFrom(d.AdvisorID),
		Email:       d.Email,
		Status:      d.Status,
		EmailCount:  d.EmailCount,
		SentAt:      d.SentAt,
		OpenedAt:    d.OpenedAt,
		CompletedAt: d.CompletedAt,
		ExpiresAt:   d.ExpiresAt,
		CreatedAt:   d.CreatedAt,
	}
}

type letterDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	ClientID  bson.ObjectID `bson:"clientId"`
	AdvisorID bson.ObjectID `bson:"advisorId"`
	Status    string        `bson:"status"`
	Services  []string      `bson:"services,omitempty"`
	FeeNote   string        `bson:"feeStructure,omitempty"`
	SentAt    *time.Time    `bson:"sentAt,omitempty"`
	ViewedAt  *time.Time    `bson:"viewedAt,omitempty"`
	SignedAt  *time.Time    `bson:"signedAt,omitempty"`
	ExpiresAt *time.Time    `bson:"expiresAt,omitempty"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *letterDoc) toEntity() *entity.EngagementLetter {
	return &entity.EngagementLetter{
		ID:        idFrom(d.ID),
		ClientID:  idFrom(d.ClientID),
		AdvisorID: idFrom(d.AdvisorID),
		Status:    d.Status,
		Services:  d.Services,
		FeeNote:   d.FeeNote,
		SentAt:    d.SentAt,
		ViewedAt:  d.ViewedAt,
		SignedAt:  d.SignedAt,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}
}

type planDoc struct {
	ID         bson.ObjectID `bson:"_id"`
	ClientID   bson.ObjectID `bson:"clientId"`
	AdvisorID  bson.ObjectID `bson:"advisorId"`
	PlanType   string        `bson:"planType"`
	Status     string        `bson:"status"`
	Version    int           `bson:"version"`
	Goals      []bson.Raw    `bson:"goals,omitempty"`
	ReviewDate *time.Time    `bson:"reviewDate,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt"`
}

func (d *planDoc) toEntity() *entity.FinancialPlan {
	return &entity.FinancialPlan{
		ID:         idFrom(d.ID),
		ClientID:   idFrom(d.ClientID),
		AdvisorID:  idFrom(d.AdvisorID),
		PlanType:   d.PlanType,
		Status:     d.Status,
		Version:    d.Version,
		Goals:      len(d.Goals),
		ReviewDate: d.ReviewDate,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type meetingDoc struct {
	ID              bson.ObjectID  `bson:"_id"`
	ClientID        bson.ObjectID  `bson:"clientId"`
	AdvisorID       bson.ObjectID  `bson:"advisorId"`
	Title           string         `bson:"title"`
	MeetingType     string         `bson:"meetingType"`
	Status          string         `bson:"status"`
	ScheduledAt     *time.Time     `bson:"scheduledAt,omitempty"`
	StartedAt       *time.Time     `bson:"startedAt,omitempty"`
	EndedAt         *time.Time     `bson:"endedAt,omitempty"`
	DurationMinutes int            `bson:"duration"`
	Transcript      *transcriptDoc `bson:"transcript,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt"`
}

type transcriptDoc struct {
	Status  string `bson:"status"`
	Summary string `bson:"summary,omitempty"`
}

func (d *meetingDoc) toEntity() *entity.Meeting {
	m := &entity.Meeting{
		ID:              idFrom(d.ID),
		ClientID:        idFrom(d.ClientID),
		AdvisorID:       idFrom(d.AdvisorID),
		Title:           d.Title,
		MeetingType:     d.MeetingType,
		Status:          d.Status,
		ScheduledAt:     d.ScheduledAt,
		StartedAt:       d.StartedAt,
		EndedAt:         d.EndedAt,
		DurationMinutes: d.DurationMinutes,
		CreatedAt:       d.CreatedAt,
	}
	if d.Transcript != nil {
		m.TranscriptAvailable = d.Transcript.Status == "completed"
		m.Summary = d.Transcript.Summary
	}
	return m
}

type exitDoc struct {
	ID             bson.ObjectID `bson:"_id"`
	ClientID       bson.ObjectID `bson:"clientId"`
	AdvisorID      bson.ObjectID `bson:"advisorId"`
	SchemeName     string        `bson:"schemeName"`
	FundCategory   string        `bson:"fundCategory,omitempty"`
	ExitAmount     float64       `bson:"exitAmount"`
	ExitMethod     string        `bson:"exitMethod,omitempty"`
	Priority       string        `bson:"priority,omitempty"`
	Status         string        `bson:"status"`
	TargetExitDate *time.Time    `bson:"targetExitDate,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt"`
}

func (d *exitDoc) toEntity() *entity.MutualFundExitStrategy {
	return &entity.MutualFundExitStrategy{
		ID:             idFrom(d.ID),
		ClientID:       idFrom(d.ClientID),
		AdvisorID:      idFrom(d.AdvisorID),
		SchemeName:     d.SchemeName,
		FundCategory:   d.FundCategory,
		ExitAmount:     money(d.ExitAmount),
		ExitMethod:     d.ExitMethod,
		Priority:       d.Priority,
		Status:         d.Status,
		TargetExitDate: d.TargetExitDate,
		CreatedAt:      d.CreatedAt,
	}
}

type taxDoc struct {
	ID               bson.ObjectID `bson:"_id"`
	ClientID         bson.ObjectID `bson:"clientId"`
	AdvisorID        bson.ObjectID `bson:"advisorId"`
	TaxYear          string        `bson:"taxYear"`
	Regime           string        `bson:"taxRegime,omitempty"`
	Status           string        `bson:"status"`
	EstimatedSavings float64       `bson:"estimatedSavings"`
	CreatedAt        time.Time     `bson:"createdAt"`
}

func (d *taxDoc) toEntity() *entity.TaxPlan {
	return &entity.TaxPlan{
		ID:               idFrom(d.ID),
		ClientID:         idFrom(d.ClientID),
		AdvisorID:        idFrom(d.AdvisorID),
		TaxYear:          d.TaxYear,
		Regime:           d.Regime,
		Status:           d.Status,
		EstimatedSavings: money(d.EstimatedSavings),
		CreatedAt:        d.CreatedAt,
	}
}

type chatDoc struct {
	ID            bson.ObjectID `bson:"_id"`
	ClientID      bson.ObjectID `bson:"clientId"`
	AdvisorID     bson.ObjectID `bson:"advisorId"`
	Title         string        `bson:"title"`
	Status        string        `bson:"status"`
	Messages      []bson.Raw    `bson:"messages,omitempty"`
	LastMessageAt *time.Time    `bson:"lastMessageAt,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

func (d *chatDoc) toEntity() *entity.ChatConversation {
	return &entity.ChatConversation{
		ID:            idFrom(d.ID),
		ClientID:      idFrom(d.ClientID),
		AdvisorID:     idFrom(d.AdvisorID),
		Title:         d.Title,
		Status:        d.Status,
		MessageCount:  len(d.Messages),
		LastMessageAt: d.LastMessageAt,
		CreatedAt:     d.CreatedAt,
	}
}

type kycDoc struct {
	ID            bson.ObjectID `bson:"_id"`
	ClientID      bson.ObjectID `bson:"clientId"`
	AdvisorID     bson.ObjectID `bson:"advisorId"`
	Provider      string        `bson:"provider"`
	RequestID     string        `bson:"requestId,omitempty"`
	OverallStatus string        `bson:"overallStatus"`
	AadharStatus  string        `bson:"aadharStatus,omitempty"`
	PANStatus     string        `bson:"panStatus,omitempty"`
	LastCheckedAt *time.Time    `bson:"lastCheckedAt,omitempty"`
	VerifiedAt    *time.Time    `bson:"verifiedAt,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

func (d *kycDoc) toEntity() *entity.KYCVerification {
	return &entity.KYCVerification{
		ID:            idFrom(d.ID),
		ClientID:      idFrom(d.ClientID),
		AdvisorID:     idFrom(d.AdvisorID),
		Provider:      d.Provider,
		RequestID:     d.RequestID,
		OverallStatus: d.OverallStatus,
		AadharStatus:  d.AadharStatus,
		PANStatus:     d.PANStatus,
		LastCheckedAt: d.LastCheckedAt,
		VerifiedAt:    d.VerifiedAt,
		CreatedAt:     d.CreatedAt,
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// idFrom convierte un ObjectID al identificador canónico. Hex() siempre da 24 hex
// en minúsculas, así que ParseID no puede fallar aquí.
func idFrom(oid bson.ObjectID) entity.ID {
	id, _ := entity.ParseID(oid.Hex())
	return id
}

// money redondea a 2 decimales: los Number de Mongo arrastran error binario.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
