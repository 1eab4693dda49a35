package entity

import "time"

// Estados de un plan financiero.
const (
	PlanStatusDraft     = "draft"
	PlanStatusActive    = "active"
	PlanStatusCompleted = "completed"
	PlanStatusArchived  = "archived"
)

// FinancialPlan plan financiero elaborado para el cliente.
type FinancialPlan struct {
	ID         ID
	ClientID   ID
	AdvisorID  ID
	PlanType   string // cash_flow, goal_based, hybrid
	Status     string
	Version    int
	Goals      int // número de objetivos registrados
	ReviewDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
