package entity

import "time"

// Estados de una conversación con el asistente IA.
const (
	ChatStatusActive   = "active"
	ChatStatusArchived = "archived"
)

// ChatConversation conversación con el asistente IA sobre un cliente.
type ChatConversation struct {
	ID            ID
	ClientID      ID
	AdvisorID     ID
	Title         string
	Status        string
	MessageCount  int
	LastMessageAt *time.Time
	CreatedAt     time.Time
}
