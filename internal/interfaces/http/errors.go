package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/UDDITwork/FINREP-sub006/internal/application/dto"
	"github.com/UDDITwork/FINREP-sub006/internal/domain"
	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

// Responder traduce errores de dominio a status + envelope y los registra.
// Fuera de producción el envelope incluye el error interno en "error".
type Responder struct {
	log        *logger.Logger
	production bool
}

// NewResponder construye el responder. log nil descarta los registros.
func NewResponder(log *logger.Logger, production bool) *Responder {
	if log == nil {
		log = logger.Nop()
	}
	return &Responder{log: log, production: production}
}

// OK 200 con envelope de éxito.
func (r *Responder) OK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

// Created 201 con envelope de éxito.
func (r *Responder) Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// Fail mapea err con errors.Is y responde. op identifica la operación en el log.
func (r *Responder) Fail(c *fiber.Ctx, op, clientID string, err error) error {
	status, code, message := classify(err)

	advisorID := ""
	if actor := GetAdvisor(c); !actor.IsZero() {
		advisorID = actor.AdvisorID().String()
	}
	l := r.log.Op(op, advisorID, clientID)
	ev := l.Warn()
	if status >= fiber.StatusInternalServerError {
		ev = l.Error()
	}
	ev.Err(err).
		Int("status", status).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg(message)

	body := dto.Fail(code, message)
	if !r.production {
		body.Error = err.Error()
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler para fiber.Config. Cubre lo que no pasa por Fail: rutas
// inexistentes, métodos no permitidos, cuerpos excesivos y panics recuperados.
// Los *fiber.Error 4xx usan un mensaje fijo; el resto sale como 500 INTERNAL.
func (r *Responder) ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code, message := frameworkCode(fe.Code)
		r.log.Debug().
			Int("status", fe.Code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg(message)
		return c.Status(fe.Code).JSON(dto.Fail(code, message))
	}
	return r.Fail(c, "http.unhandled", "", err)
}

func frameworkCode(status int) (code, message string) {
	switch status {
	case fiber.StatusBadRequest:
		return "INVALID_INPUT", "parámetros inválidos"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED", "autenticación requerida"
	case fiber.StatusForbidden:
		return "FORBIDDEN", "acceso denegado"
	case fiber.StatusNotFound:
		return "NOT_FOUND", "ruta no encontrada"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "método no permitido"
	case fiber.StatusRequestTimeout:
		return "TIMEOUT", "el servicio tardó demasiado; intenta de nuevo"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "cuerpo de la solicitud demasiado grande"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS", "demasiadas solicitudes"
	default:
		return "BAD_REQUEST", "solicitud inválida"
	}
}

// classify orden relevante: ErrAggregation antes que DeadlineExceeded, para que un
// reporte abortado por el contexto siga siendo 500 y solo la IA vencida dé 408.
func classify(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, "INVALID_INPUT", "parámetros inválidos"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "autenticación requerida"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAdvisorNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado"
	case errors.Is(err, domain.ErrAIUnavailable):
		return fiber.StatusServiceUnavailable, "AI_UNAVAILABLE", "el servicio de IA no está configurado"
	case errors.Is(err, domain.ErrAggregation):
		return fiber.StatusInternalServerError, "REPORT_FAILED", "no se pudo generar el reporte"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusRequestTimeout, "TIMEOUT", "el servicio tardó demasiado; intenta de nuevo"
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno"
	}
}
