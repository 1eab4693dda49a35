package entity

import "time"

// Estados globales de una verificación KYC.
const (
	KYCStatusNotStarted = "not_started"
	KYCStatusInProgress = "in_progress"
	KYCStatusVerified   = "verified"
	KYCStatusRejected   = "rejected"
	KYCStatusExpired    = "expired"
)

// KYCVerification verificación de identidad delegada al proveedor externo.
type KYCVerification struct {
	ID            ID
	ClientID      ID
	AdvisorID     ID
	Provider      string // ej. "digio"
	RequestID     string // id de la solicitud en el proveedor
	OverallStatus string
	AadharStatus  string
	PANStatus     string
	LastCheckedAt *time.Time
	VerifiedAt    *time.Time
	CreatedAt     time.Time
}
