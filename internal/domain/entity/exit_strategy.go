package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una estrategia de salida de fondo mutuo.
const (
	ExitStatusDraft           = "draft"
	ExitStatusPendingApproval = "pending_approval"
	ExitStatusApproved        = "approved"
	ExitStatusInExecution     = "in_execution"
	ExitStatusCompleted       = "completed"
	ExitStatusCancelled       = "cancelled"
)

// MutualFundExitStrategy estrategia de salida de un esquema de fondo mutuo.
type MutualFundExitStrategy struct {
	ID             ID
	ClientID       ID
	AdvisorID      ID
	SchemeName     string
	FundCategory   string
	ExitAmount     decimal.Decimal
	ExitMethod     string // lump_sum, swp, stp
	Priority       string // low, medium, high, urgent
	Status         string
	TargetExitDate *time.Time
	CreatedAt      time.Time
}
