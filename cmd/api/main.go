package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/costeo-multimarca/internal/application/proyeccion"
	"github.com/jhoicas/costeo-multimarca/internal/application/simulacion"
	"github.com/jhoicas/costeo-multimarca/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/costeo-multimarca/internal/interfaces/http"
	"github.com/jhoicas/costeo-multimarca/pkg/config"
	"github.com/jhoicas/costeo-multimarca/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Logger.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	simulator := simulacion.NewSimulator(simulacion.Deps{
		Escenarios:     postgres.NewEscenarioRepository(pool),
		Marcas:         postgres.NewMarcaRepository(pool),
		Comercial:      postgres.NewComercialRepository(pool),
		Logistica:      postgres.NewLogisticaRepository(pool),
		Administrativo: postgres.NewAdministrativoRepository(pool),
		Ventas:         postgres.NewProyeccionVentasRepository(pool),
		Factores:       postgres.NewFactoresRepository(pool),
		Parametros:     postgres.NewParametrosRepository(pool),
		Lejanias:       postgres.NewLejaniaRepository(pool),
		Log:            log,
	})

	txRunner := postgres.NewTxRunner(pool)
	projector := proyeccion.NewProjector(txRunner, postgres.NewParametrosRepository(pool), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Simulator: simulator,
		Projector: projector,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
