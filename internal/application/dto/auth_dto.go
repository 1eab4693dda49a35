package dto

import "time"

// RegisterRequest alta de asesor con los datos básicos de su firma.
type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	SEBIRegNumber string `json:"sebiRegNumber,omitempty"`
	FirmName      string `json:"firmName,omitempty"`
}

// AdvisorResponse salida de un asesor (sin password).
type AdvisorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string          `json:"token"`
	Advisor AdvisorResponse `json:"advisor"`
}
