package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

// ClientUseCase listado ligero de clientes del asesor.
// No consulta los registros por servicio: reportSections es un indicador estático.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve una página de clientes del asesor autenticado y el total.
func (uc *ClientUseCase) List(ctx context.Context, actor entity.AdvisorContext, page dto.PageRequest) (*dto.ClientListResponse, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	page.DefaultPage()

	var (
		list  []*entity.Client
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = uc.repo.ListByAdvisor(gctx, actor.AdvisorID(), page.Limit, page.Offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountByAdvisor(gctx, actor.AdvisorID())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}

	sections := report.SectionNames()
	out := &dto.ClientListResponse{
		Clients: make([]dto.ClientListItem, 0, len(list)),
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, c := range list {
		out.Clients = append(out.Clients, dto.ClientListItem{
			ID:             c.ID.String(),
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			Email:          c.Email,
			Status:         c.Status,
			PortfolioValue: c.PortfolioValue(),
			HasCAS:         c.CAS != nil,
			ReportSections: sections,
			CreatedAt:      c.CreatedAt,
		})
	}
	return out, nil
}
