package postgres

import (
	"context"
	"fmt"

	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

// Asegura que BrandingRepo implementa repository.BrandingRepository.
var _ repository.BrandingRepository = (*BrandingRepo)(nil)

// BrandingRepo perfil de la firma del asesor (advisor_brandings, uno a uno con advisors).
type BrandingRepo struct {
	q Querier
}

// NewBrandingRepository construye el adaptador. Acepta pool o tx (Querier).
func NewBrandingRepository(q Querier) *BrandingRepo {
	return &BrandingRepo{q: q}
}

// Upsert crea o reemplaza el branding del asesor.
func (r *BrandingRepo) Upsert(ctx context.Context, b *entity.AdvisorBranding) error {
	const query = `
		INSERT INTO advisor_brandings (advisor_id, firm_name, logo_url, primary_color, tagline, address, website, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (advisor_id) DO UPDATE SET
			firm_name     = EXCLUDED.firm_name,
			logo_url      = EXCLUDED.logo_url,
			primary_color = EXCLUDED.primary_color,
			tagline       = EXCLUDED.tagline,
			address       = EXCLUDED.address,
			website       = EXCLUDED.website,
			updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		b.AdvisorID.String(), b.FirmName, b.LogoURL, b.PrimaryColor, b.Tagline, b.Address, b.Website, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert branding: %w", err)
	}
	return nil
}

// GetByAdvisor lee el branding con nombre y email del asesor. Un asesor sin fila de
// branding devuelve igualmente su nombre y email (LEFT JOIN); (nil, nil) si el asesor no existe.
func (r *BrandingRepo) GetByAdvisor(ctx context.Context, advisorID entity.ID) (*entity.AdvisorBranding, error) {
	const query = `
		SELECT a.id,
		       trim(a.first_name || ' ' || a.last_name),
		       a.email,
		       COALESCE(b.firm_name, ''),
		       COALESCE(b.logo_url, ''),
		       COALESCE(b.primary_color, ''),
		       COALESCE(b.tagline, ''),
		       COALESCE(b.address, ''),
		       COALESCE(b.website, ''),
		       COALESCE(b.updated_at, a.updated_at)
		  FROM advisors a
		  LEFT JOIN advisor_brandings b ON b.advisor_id = a.id
		 WHERE a.id = $1`
	var (
		b     entity.AdvisorBranding
		rawID string
	)
	err := r.q.QueryRow(ctx, query, advisorID.String()).Scan(
		&rawID, &b.AdvisorName, &b.AdvisorEmail, &b.FirmName, &b.LogoURL, &b.PrimaryColor,
		&b.Tagline, &b.Address, &b.Website, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branding: %w", err)
	}
	if b.AdvisorID, err = scanID(rawID); err != nil {
		return nil, err
	}
	return &b, nil
}
