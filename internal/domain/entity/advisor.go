package entity

import "time"

// Roles válidos para Advisor.
const (
	RoleAdvisor = "advisor"
	RoleAdmin   = "admin"
)

// Estados de la cuenta del asesor.
const (
	AdvisorStatusActive    = "active"
	AdvisorStatusSuspended = "suspended"
)

// Advisor representa al profesional que gestiona clientes en la plataforma.
type Advisor struct {
	ID            ID
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	PhoneNumber   string
	SEBIRegNumber string // registro del regulador (opcional)
	Role          string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayName nombre visible del asesor.
func (a *Advisor) DisplayName() string {
	return joinName(a.FirstName, a.LastName)
}

// AdvisorBranding identidad visual de la firma del asesor (uno a uno con Advisor).
// AdvisorName y AdvisorEmail se leen junto al branding para el encabezado del reporte.
type AdvisorBranding struct {
	AdvisorID    ID
	AdvisorName  string
	AdvisorEmail string
	FirmName     string
	LogoURL      string
	PrimaryColor string // hex, ej. "#1e3a8a"
	Tagline      string
	Address      string
	Website      string
	UpdatedAt    time.Time
}

// AdvisorContext contexto de autorización de una petición, derivado del token verificado.
// Es un valor inmutable: los campos no se exportan y no hay setters.
type AdvisorContext struct {
	advisorID ID
	email     string
	role      string
}

// NewAdvisorContext construye el contexto de autorización.
func NewAdvisorContext(advisorID ID, email, role string) AdvisorContext {
	return AdvisorContext{advisorID: advisorID, email: email, role: role}
}

// AdvisorID identidad autenticada.
func (c AdvisorContext) AdvisorID() ID { return c.advisorID }

// Email del asesor autenticado.
func (c AdvisorContext) Email() string { return c.email }

// Role del asesor autenticado.
func (c AdvisorContext) Role() string { return c.role }

// IsZero indica que no hay identidad autenticada.
func (c AdvisorContext) IsZero() bool { return c.advisorID.IsZero() }

// ScopeFor devuelve el alcance (cliente, asesor) para las lecturas por servicio.
func (c AdvisorContext) ScopeFor(clientID ID) Scope {
	return Scope{ClientID: clientID, AdvisorID: c.advisorID}
}
