// Package auth agrupa el alta y el login de asesores y la guarda de autorización
// que protege las rutas con identificador de asesor.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/entity"
	"github.com/UDDITwork/FINREP-sub006/internal/domain/repository"
	"github.com/UDDITwork/FINREP-sub006/pkg/jwt"
)

// minPasswordLen longitud mínima de contraseña en el alta.
const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(advisors repository.AdvisorRepository, branding repository.BrandingRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	advisorRepo repository.AdvisorRepository
	tx          TxRunner
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(advisorRepo repository.AdvisorRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{advisorRepo: advisorRepo, tx: tx, jwtCfg: jwtCfg, now: time.Now}
}

// RegisterAdvisor crea el asesor y su perfil de branding en una sola transacción.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterAdvisor(ctx context.Context, in dto.RegisterRequest) (*dto.AdvisorResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, fmt.Errorf("%w: firstName es obligatorio", domain.ErrInvalidInput)
	}

	existing, err := uc.advisorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	advisor := &entity.Advisor{
		ID:            entity.NewID(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         email,
		PasswordHash:  string(hash),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		SEBIRegNumber: strings.TrimSpace(in.SEBIRegNumber),
		Role:          entity.RoleAdvisor,
		Status:        entity.AdvisorStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	firm := strings.TrimSpace(in.FirmName)
	if firm == "" {
		firm = advisor.DisplayName()
	}
	branding := &entity.AdvisorBranding{
		AdvisorID: advisor.ID,
		FirmName:  firm,
		UpdatedAt: now,
	}

	err = uc.tx.RunRegistration(ctx, func(advisors repository.AdvisorRepository, brandings repository.BrandingRepository) error {
		if err := advisors.Create(ctx, advisor); err != nil {
			return err
		}
		return brandings.Upsert(ctx, branding)
	})
	if err != nil {
		return nil, err
	}
	return toAdvisorResponse(advisor), nil
}

// Login verifica email/password, genera JWT y retorna token + asesor.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	advisor, err := uc.advisorRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(advisor.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if advisor.Status != entity.AdvisorStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, advisor.ID.String(), advisor.Email, advisor.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Advisor: *toAdvisorResponse(advisor),
	}, nil
}

func toAdvisorResponse(a *entity.Advisor) *dto.AdvisorResponse {
	if a == nil {
		return nil
	}
	return &dto.AdvisorResponse{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
