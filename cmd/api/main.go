package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/auth"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/usecase"
	appventa "github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/venta"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/infrastructure/supabase"
	httpRouter "github.com/Mauricioo67/Farmacia-Vida-Sana/internal/interfaces/http"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/config"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	client := supabase.NewClient(cfg.Supabase, log)

	articuloRepo := supabase.NewArticuloRepository(client)
	clienteRepo := supabase.NewClienteRepository(client)
	categoriaRepo := supabase.NewCategoriaRepository(client)
	presentacionRepo := supabase.NewPresentacionRepository(client)
	trabajadorRepo := supabase.NewTrabajadorRepository(client)
	ventaRepo := supabase.NewVentaRepository(client)
	detalleRepo := supabase.NewDetalleVentaRepository(client)

	authUC := appauth.NewAuthUseCase(trabajadorRepo, appauth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		AccessExpMinutes:  cfg.JWT.AccessExpiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})
	articuloUC := usecase.NewArticuloUseCase(articuloRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, presentacionRepo)
	reporteUC := usecase.NewReporteUseCase(ventaRepo, articuloRepo)
	registrarVentaUC := appventa.NewRegistrarVentaUseCase(ventaRepo, detalleRepo, articuloRepo, log)
	consultaVentaUC := appventa.NewConsultaVentaUseCase(ventaRepo, detalleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ArticuloUC:     articuloUC,
		ClienteUC:      clienteUC,
		CategoriaUC:    categoriaUC,
		ReporteUC:      reporteUC,
		RegistrarVenta: registrarVentaUC,
		ConsultaVenta:  consultaVentaUC,
		JWTSecret:      cfg.JWT.Secret,
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
