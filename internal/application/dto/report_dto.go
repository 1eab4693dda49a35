package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sección del reporte.
const (
	SectionStatusOK          = "ok"
	SectionStatusUnavailable = "unavailable"
)

// Motivos de indisponibilidad (sin detalles internos).
const (
	SectionReasonTimeout = "timeout"
	SectionReasonError   = "error"
)

// ClientReportDTO respuesta de GET /api/report/:clientId.
// Se recalcula en cada petición; no se persiste.
type ClientReportDTO struct {
	Header   ReportHeaderDTO  `json:"header"`
	Client   ClientSectionDTO `json:"client"`
	Services ServicesDTO      `json:"services"`
	Summary  ReportSummaryDTO `json:"summary"`
}

// ── Encabezado ────────────────────────────────────────────────────────────────

// ReportHeaderDTO identificador y metadatos del reporte. Es la única parte que
// cambia entre dos llamadas sobre los mismos datos.
type ReportHeaderDTO struct {
	ReportID    string         `json:"reportId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	ClientName  string         `json:"clientName"`
	Advisor     AdvisorInfoDTO `json:"advisor"`
}

// AdvisorInfoDTO identidad del asesor que solicita el reporte.
type AdvisorInfoDTO struct {
	ID             string       `json:"id"`
	Name           string       `json:"name,omitempty"`
	Email          string       `json:"email"`
	Branding       *BrandingDTO `json:"branding"`
	BrandingStatus string       `json:"brandingStatus"`
}

// BrandingDTO identidad visual de la firma.
type BrandingDTO struct {
	FirmName     string `json:"firmName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty"`
}

// ── Cliente ───────────────────────────────────────────────────────────────────

// ClientSectionDTO perfil y datos financieros del cliente.
type ClientSectionDTO struct {
	ID        string       `json:"id"`
	Personal  PersonalDTO  `json:"personal"`
	Financial FinancialDTO `json:"financial"`
}

// PersonalDTO datos personales.
type PersonalDTO struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	PAN         string     `json:"pan,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Occupation  string     `json:"occupation,omitempty"`
	City        string     `json:"city,omitempty"`
	Status      string     `json:"status"`
	ClientSince time.Time  `json:"clientSince"`
}

// FinancialDTO instantánea financiera más el resumen del CAS.
type FinancialDTO struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	MonthlySurplus  decimal.Decimal `json:"monthlySurplus"`
	NetWorth        decimal.Decimal `json:"netWorth"`
	RiskTolerance   string          `json:"riskTolerance,omitempty"`
	PortfolioValue  decimal.Decimal `json:"portfolioValue"`
	CAS             *CASDTO         `json:"cas,omitempty"`
}

// CASDTO resumen del Consolidated Account Statement.
type CASDTO struct {
	TotalValue   decimal.Decimal `json:"totalValue"`
	MutualFunds  decimal.Decimal `json:"mutualFunds"`
	Equities     decimal.Decimal `json:"equities"`
	HoldingCount int             `json:"holdingCount"`
	StatementAt  *time.Time      `json:"statementAt,omitempty"`
}

// ── Servicios ─────────────────────────────────────────────────────────────────

// SectionDTO sección por servicio. Invariante: Count == len(Records).
// Una sección unavailable lleva Count 0 y Records vacío.
type SectionDTO[T any] struct {
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
	Count       int    `json:"count"`
	ActiveCount int    `json:"activeCount"`
	Records     []T    `json:"records"`
}

// ServicesDTO una sección por tipo de servicio.
type ServicesDTO struct {
	Onboarding        SectionDTO[OnboardingRecordDTO]       `json:"onboarding"`
	EngagementLetters SectionDTO[EngagementLetterRecordDTO] `json:"engagementLetters"`
	FinancialPlans    SectionDTO[FinancialPlanRecordDTO]    `json:"financialPlans"`
	Meetings          SectionDTO[MeetingRecordDTO]          `json:"meetings"`
	MFExitStrategies  SectionDTO[ExitStrategyRecordDTO]     `json:"mfExitStrategies"`
	TaxPlanning       SectionDTO[TaxPlanRecordDTO]          `json:"taxPlanning"`
	ChatHistory       SectionDTO[ChatRecordDTO]             `json:"chatHistory"`
	KYC               SectionDTO[KYCRecordDTO]              `json:"kyc"`
}

// OnboardingRecordDTO invitación de onboarding.
type OnboardingRecordDTO struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	EmailCount  int        `json:"emailCount"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// EngagementLetterRecordDTO carta de compromiso.
type EngagementLetterRecordDTO struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Services  []string   `json:"services"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	SignedAt  *time.Time `json:"signedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FinancialPlanRecordDTO plan financiero.
type FinancialPlanRecordDTO struct {
	ID         string     `json:"id"`
	PlanType   string     `json:"planType"`
	Status     string     `json:"status"`
	Version    int        `json:"version"`
	Goals      int        `json:"goals"`
	ReviewDate *time.Time `json:"reviewDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MeetingRecordDTO reunión.
type MeetingRecordDTO struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	MeetingType         string     `json:"meetingType"`
	Status              string     `json:"status"`
	ScheduledAt         *time.Time `json:"scheduledAt,omitempty"`
	DurationMinutes     int        `json:"durationMinutes"`
	TranscriptAvailable bool       `json:"transcriptAvailable"`
	Summary             string     `json:"summary,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// ExitStrategyRecordDTO estrategia de salida de fondo mutuo.
type ExitStrategyRecordDTO struct {
	ID             string          `json:"id"`
	SchemeName     string          `json:"schemeName"`
	FundCategory   string          `json:"fundCategory,omitempty"`
	ExitAmount     decimal.Decimal `json:"exitAmount"`
	ExitMethod     string          `json:"exitMethod,omitempty"`
	Priority       string          `json:"priority,omitempty"`
	Status         string          `json:"status"`
	TargetExitDate *time.Time      `json:"targetExitDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// TaxPlanRecordDTO planificación tributaria.
type TaxPlanRecordDTO struct {
	ID               string          `json:"id"`
	TaxYear          string          `json:"taxYear"`
	Regime           string          `json:"regime,omitempty"`
	Status           string          `json:"status"`
	EstimatedSavings decimal.Decimal `json:"estimatedSavings"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ChatRecordDTO conversación con el asistente.
type ChatRecordDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	MessageCount  int        `json:"messageCount"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// KYCRecordDTO verificación KYC.
type KYCRecordDTO struct {
	ID            string     `json:"id"`
	Provider      string     `json:"provider"`
	OverallStatus string     `json:"overallStatus"`
	AadharStatus  string     `json:"aadharStatus,omitempty"`
	PANStatus     string     `json:"panStatus,omitempty"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// ReportSummaryDTO cifras derivadas de las secciones del mismo reporte.
type ReportSummaryDTO struct {
	TotalServices       int                   `json:"totalServices"`
	ActiveServices      int                   `json:"activeServices"`
	PortfolioValue      decimal.Decimal       `json:"portfolioValue"`
	Complete            bool                  `json:"complete"`
	UnavailableSections []string              `json:"unavailableSections"`
	Breakdown           []SectionBreakdownDTO `json:"breakdown"`
}

// SectionBreakdownDTO conteo por sección.
type SectionBreakdownDTO struct {
	Section     string `json:"section"`
	Status      string `json:"status"`
	Count       int    `json:"count"`
	ActiveCount int    `json:"activeCount"`
}

// ReportSummaryViewDTO respuesta de GET /api/report/:clientId/summary.
// Es una proyección de ClientReportDTO sin cuerpos de registros.
type ReportSummaryViewDTO struct {
	ReportID    string           `json:"reportId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	ClientID    string           `json:"clientId"`
	ClientName  string           `json:"clientName"`
	Summary     ReportSummaryDTO `json:"summary"`
}

// ReportInsightsDTO narrativa IA sobre el resumen del reporte.
type ReportInsightsDTO struct {
	ReportID   string   `json:"reportId"`
	Headline   string   `json:"headline"`
	Highlights []string `json:"highlights"`
	Risks      []string `json:"risks"`
	NextSteps  []string `json:"nextSteps"`
	Model      string   `json:"model"`
}
