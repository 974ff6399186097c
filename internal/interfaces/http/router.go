package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costeo-multimarca/internal/application/proyeccion"
	"github.com/jhoicas/costeo-multimarca/internal/application/simulacion"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Simulator *simulacion.Simulator
	Projector *proyeccion.Projector
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	simHandler := NewSimulacionHandler(deps.Simulator)
	api.Post("/simulaciones", simHandler.Simular)

	proyHandler := NewProyeccionHandler(deps.Projector)
	escenarios := api.Group("/escenarios")
	escenarios.Post("/:id/duplicar", proyHandler.Duplicar)
	escenarios.Post("/:id/proyectar", proyHandler.Proyectar)
}
