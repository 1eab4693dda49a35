package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

// Pinger dependencia con health check (Mongo, PostgreSQL).
type Pinger func(ctx context.Context) error

// HealthHandler liveness y readiness, sin auth.
type HealthHandler struct {
	service string
	checks  map[string]Pinger
	log     *logger.Logger
}

// NewHealthHandler construye el handler; checks y log pueden ser nil.
func NewHealthHandler(service string, checks map[string]Pinger, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthHandler{service: service, checks: checks, log: log}
}

// Live GET /health: el proceso responde.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.OK(fiber.Map{"status": "ok", "service": h.service}))
}

// Ready GET /health/ready: 503 si alguna dependencia no responde en 2 s.
// El cuerpo solo dice ok/unavailable; el error del driver va al log.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.Map{}
	ready := true
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			h.log.Error().Err(err).Str("dependency", name).Msg("dependencia no disponible")
			status[name] = "unavailable"
			ready = false
			continue
		}
		status[name] = "ok"
	}
	if !ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Envelope{
			Success: false, Code: "NOT_READY", Message: "dependencias no disponibles", Data: status,
		})
	}
	return c.JSON(dto.OK(status))
}
