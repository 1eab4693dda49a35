package entity

import "time"

// Estados de una carta de compromiso (LOE).
const (
	LetterStatusDraft   = "draft"
	LetterStatusSent    = "sent"
	LetterStatusViewed  = "viewed"
	LetterStatusSigned  = "signed"
	LetterStatusExpired = "expired"
)

// EngagementLetter carta de compromiso (Letter of Engagement) entre asesor y cliente.
type EngagementLetter struct {
	ID        ID
	ClientID  ID
	AdvisorID ID
	Status    string
	Services  []string // servicios contratados
	FeeNote   string
	SentAt    *time.Time
	ViewedAt  *time.Time
	SignedAt  *time.Time
	ExpiresAt *time.Time
	CreatedAt time.Time
}
