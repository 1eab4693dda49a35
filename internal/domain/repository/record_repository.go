package repository

import (
	"context"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// Accessors de registros por servicio.
//
// Contrato común:
//   - ListByClient devuelve los registros del par (cliente, asesor) ordenados por
//     fecha de creación; slice vacío (nunca error) si no hay registros.
//   - Solo lectura, sin estado compartido: seguros para llamadas concurrentes.

// OnboardingRepository invitaciones de onboarding.
type OnboardingRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.OnboardingInvitation, error)
}

// EngagementLetterRepository cartas de compromiso (LOE).
type EngagementLetterRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.EngagementLetter, error)
}

// FinancialPlanRepository planes financieros.
type FinancialPlanRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.FinancialPlan, error)
}

// MeetingRepository historial de reuniones.
type MeetingRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.Meeting, error)
}

// ExitStrategyRepository estrategias de salida de fondos mutuos.
type ExitStrategyRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.MutualFundExitStrategy, error)
}

// TaxPlanRepository planificación tributaria.
type TaxPlanRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.TaxPlan, error)
}

// ChatRepository conversaciones con el asistente IA.
type ChatRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.ChatConversation, error)
}

// KYCRepository verificaciones KYC.
type KYCRepository interface {
	ListByClient(ctx context.Context, scope entity.Scope) ([]*entity.KYCVerification, error)
}
