package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la planificación tributaria.
const (
	TaxStatusDraft      = "draft"
	TaxStatusInProgress = "in_progress"
	TaxStatusReview     = "review"
	TaxStatusApproved   = "approved"
	TaxStatusCompleted  = "completed"
)

// TaxPlan registro de planificación tributaria de un año fiscal.
type TaxPlan struct {
	ID               ID
	ClientID         ID
	AdvisorID        ID
	TaxYear          string // ej. "2024-25"
	Regime           string // old, new
	Status           string
	EstimatedSavings decimal.Decimal
	CreatedAt        time.Time
}
