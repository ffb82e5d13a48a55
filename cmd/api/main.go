package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/bootstrap"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Empleados-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/records"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
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

	ctx := context.Background()

	// Record store: PostgreSQL (tabla key/value) o memoria para desarrollo.
	var store repository.RecordStore
	var storePing httpRouter.StorePinger
	switch cfg.Store.Driver {
	case "memory":
		log.Warn().Msg("record store en memoria: los datos se pierden al reiniciar")
		store = memory.NewStore()
		storePing = func(context.Context) error { return nil }
	default:
		pool, perr := postgres.NewPool(ctx, cfg.Store)
		if perr != nil {
			log.Fatal().Err(perr).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		kv, kerr := postgres.NewKVStore(ctx, pool)
		if kerr != nil {
			log.Fatal().Err(kerr).Msg("preparar tabla kv_store")
		}
		store = kv
		storePing = kv.Ping
	}

	employeeRepo := records.NewEmployeeRepository(store)
	userRepo := records.NewUserRepository(store)
	auditRepo := records.NewAuditRepository(store)

	photos, err := storage.Connect(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al object storage")
	}

	rosterGen := infrapdf.NewMarotoRosterGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := employee.NewUseCase(employeeRepo, auditRepo, photos, rosterGen)
	dashboardUC := analytics.NewDashboardUseCase(employeeRepo, auditRepo)

	if err := bootstrap.Run(ctx, bootstrap.Deps{
		AuthUC:       authUC,
		UserRepo:     userRepo,
		EmployeeRepo: employeeRepo,
		Config:       cfg,
		Log:          log.Component("bootstrap"),
	}); err != nil {
		log.Fatal().Err(err).Msg("seed de demo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // margen sobre el máximo de foto
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		DashboardUC: dashboardUC,
		UserRepo:    userRepo,
		StorePing:   storePing,
		Config:      cfg,
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
