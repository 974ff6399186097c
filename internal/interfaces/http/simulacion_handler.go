package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-multimarca/internal/application/dto"
	"github.com/jhoicas/costeo-multimarca/internal/application/simulacion"
	"github.com/jhoicas/costeo-multimarca/internal/domain"
)

// SimulacionHandler maneja las peticiones HTTP del simulador de costos.
type SimulacionHandler struct {
	sim *simulacion.Simulator
}

// NewSimulacionHandler construye el handler.
func NewSimulacionHandler(sim *simulacion.Simulator) *SimulacionHandler {
	return &SimulacionHandler{sim: sim}
}

// Simular ejecuta una corrida contra el escenario activo.
// POST /api/v1/simulaciones
func (h *SimulacionHandler) Simular(c *fiber.Ctx) error {
	var in dto.SimularRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	res, err := h.sim.Simular(c.Context(), in.MarcaIDs)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(res)
}

// responderError traduce la taxonomía de errores del dominio a códigos HTTP:
// configuración y validación son culpa del insumo (422), recurso ausente 404
// y el resto 500.
func responderError(c *fiber.Ctx, err error) error {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIGURATION", Message: cfgErr.Error()})
	}
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
