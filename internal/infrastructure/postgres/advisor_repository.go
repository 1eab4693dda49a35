package postgres

import (
	"context"
	"fmt"

	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
)

var _ repository.AdvisorRepository = (*AdvisorRepo)(nil)

// AdvisorRepo implementación del puerto AdvisorRepository sobre PostgreSQL (pool o tx).
type AdvisorRepo struct {
	q Querier
}

// NewAdvisorRepository construye el adaptador de persistencia para asesores.
func NewAdvisorRepository(q Querier) *AdvisorRepo {
	return &AdvisorRepo{q: q}
}

const advisorColumns = `id, first_name, last_name, email, password_hash, phone_number, sebi_reg_number, role, status, created_at, updated_at`

// Create persiste un nuevo asesor. El índice único sobre lower(email) resuelve la carrera
// entre dos registros simultáneos.
func (r *AdvisorRepo) Create(ctx context.Context, a *entity.Advisor) error {
	query := `
		INSERT INTO advisors (` + advisorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID.String(), a.FirstName, a.LastName, a.Email, a.PasswordHash, a.PhoneNumber, a.SEBIRegNumber,
		a.Role, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert advisor: %w", err)
	}
	return nil
}

// GetByID obtiene un asesor por ID.
func (r *AdvisorRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Advisor, error) {
	query := `SELECT ` + advisorColumns + ` FROM advisors WHERE id = $1`
	a, err := r.scanOne(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("get advisor by id: %w", err)
	}
	return a, nil
}

// GetByEmail obtiene un asesor por email (sin distinguir mayúsculas).
func (r *AdvisorRepo) GetByEmail(ctx context.Context, email string) (*entity.Advisor, error) {
	query := `SELECT ` + advisorColumns + ` FROM advisors WHERE lower(email) = lower($1) LIMIT 1`
	a, err := r.scanOne(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("get advisor by email: %w", err)
	}
	return a, nil
}

func (r *AdvisorRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Advisor, error) {
	var (
		a     entity.Advisor
		rawID string
	)
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&rawID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash, &a.PhoneNumber, &a.SEBIRegNumber,
		&a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	if a.ID, err = scanID(rawID); err != nil {
		return nil, err
	}
	return &a, nil
}
