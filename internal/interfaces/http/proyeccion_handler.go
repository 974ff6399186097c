package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-multimarca/internal/application/dto"
	"github.com/jhoicas/costeo-multimarca/internal/application/proyeccion"
	"github.com/jhoicas/costeo-multimarca/internal/domain/entity"
)

// ProyeccionHandler maneja las peticiones HTTP de duplicación y proyección
// de escenarios.
type ProyeccionHandler struct {
	proj *proyeccion.Projector
}

// NewProyeccionHandler construye el handler.
func NewProyeccionHandler(proj *proyeccion.Projector) *ProyeccionHandler {
	return &ProyeccionHandler{proj: proj}
}

// Duplicar copia un escenario al mismo año sin incrementos.
// POST /api/v1/escenarios/:id/duplicar
func (h *ProyeccionHandler) Duplicar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.DuplicarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
	}
	nuevo, err := h.proj.Duplicar(c.Context(), id, in.Nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(escenarioResponse(nuevo))
}

// Proyectar copia un escenario a otro año aplicando los índices de
// incremento de cada registro.
// POST /api/v1/escenarios/:id/proyectar
func (h *ProyeccionHandler) Proyectar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ProyectarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
	}
	if in.AnioDestino <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anio_destino requerido"})
	}
	nuevo, err := h.proj.Proyectar(c.Context(), id, in.AnioDestino, in.Nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(escenarioResponse(nuevo))
}

func escenarioResponse(e *entity.Escenario) dto.EscenarioResponse {
	return dto.EscenarioResponse{
		ID:       e.ID,
		Nombre:   e.Nombre,
		Anio:     e.Anio,
		Periodo:  e.Periodo,
		Activo:   e.Activo,
		OrigenID: e.OrigenID,
	}
}
