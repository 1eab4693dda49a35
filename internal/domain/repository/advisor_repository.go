package repository

import (
	"context"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// AdvisorRepository define el puerto de persistencia para Advisor (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay registro.
type AdvisorRepository interface {
	Create(ctx context.Context, advisor *entity.Advisor) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Advisor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Advisor, error)
}

// BrandingRepository perfil/branding de la firma del asesor.
type BrandingRepository interface {
	Upsert(ctx context.Context, branding *entity.AdvisorBranding) error
	// GetByAdvisor devuelve el branding junto al nombre y email del asesor.
	GetByAdvisor(ctx context.Context, advisorID entity.ID) (*entity.AdvisorBranding, error)
}
