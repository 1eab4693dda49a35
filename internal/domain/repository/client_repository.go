package repository

import (
	"context"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
)

// ClientRepository lectura de clientes, siempre acotada por asesor.
type ClientRepository interface {
	// GetForAdvisor devuelve (nil, nil) si el cliente no existe o pertenece a otro asesor.
	GetForAdvisor(ctx context.Context, scope entity.Scope) (*entity.Client, error)
	ListByAdvisor(ctx context.Context, advisorID entity.ID, limit, offset int) ([]*entity.Client, error)
	CountByAdvisor(ctx context.Context, advisorID entity.ID) (int, error)
}
