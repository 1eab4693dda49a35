package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client persona cuya relación financiera con un asesor se gestiona en el sistema.
type Client struct {
	ID          ID
	AdvisorID   ID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PAN         string // Permanent Account Number
	DateOfBirth *time.Time
	Occupation  string
	City        string
	Status      string // invited, onboarding, active, inactive

	// Instantánea financiera
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	NetWorth        decimal.Decimal
	RiskTolerance   string

	// Resumen del CAS (Consolidated Account Statement) ya parseado.
	// Nil si el cliente nunca subió un CAS.
	CAS *CASSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CASSummary cifras agregadas extraídas del CAS.
type CASSummary struct {
	TotalValue   decimal.Decimal
	MutualFunds  decimal.Decimal
	Equities     decimal.Decimal
	StatementAt  *time.Time
	ParsedAt     *time.Time
	HoldingCount int
}

// FullName nombre visible del cliente.
func (c *Client) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

// PortfolioValue valor de portafolio derivado del CAS; cero si no hay CAS.
func (c *Client) PortfolioValue() decimal.Decimal {
	if c.CAS == nil {
		return decimal.Zero
	}
	return c.CAS.TotalValue
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
