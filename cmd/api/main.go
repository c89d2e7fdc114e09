package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/commodityhub/inventory-api/internal/application/session"
	"github.com/commodityhub/inventory-api/internal/application/usecase"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/infrastructure/memory"
	"github.com/commodityhub/inventory-api/internal/infrastructure/redisstore"
	httpRouter "github.com/commodityhub/inventory-api/internal/interfaces/http"
	"github.com/commodityhub/inventory-api/pkg/config"
	"github.com/commodityhub/inventory-api/pkg/jwt"
	"github.com/commodityhub/inventory-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()

	// Almacenamiento durable de sesión (dos llaves: token y usuario).
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
	}
	storage := redisstore.New(redisClient)

	// Backend simulado: credenciales fijas + catálogo seed, con latencia
	// artificial por operación.
	creds, err := memory.SeedCredentials()
	if err != nil {
		log.Fatal().Err(err).Msg("seed de credenciales")
	}
	store := memory.New(memory.Config{
		Credentials: creds,
		Products:    memory.SeedProducts(),
		NextID:      memory.SeedNextID,
		Latency: memory.Latency{
			Auth:   cfg.Store.AuthLatency,
			List:   cfg.Store.ListLatency,
			Get:    cfg.Store.GetLatency,
			Mutate: cfg.Store.MutateLatency,
		},
		TokenFunc: func(u entity.User) (string, error) {
			return jwt.Generate(cfg.JWT.Secret, u.ID, u.Role, cfg.JWT.Issuer, cfg.JWT.Expiration)
		},
	})

	sessionManager := session.NewManager(storage, store, session.Keys{
		Token: cfg.Session.TokenKey,
		User:  cfg.Session.UserKey,
	})
	// Rehidratar la sesión persistida antes de aceptar tráfico; el estado
	// corrupto se auto-repara aquí.
	if err := sessionManager.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("restaurar sesión persistida")
	}
	log.Info().Bool("authenticated", sessionManager.IsAuthenticated()).Msg("sesión restaurada")

	productUC := usecase.NewProductUseCase(store)
	dashboardUC := usecase.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionManager: sessionManager,
		ProductUC:      productUC,
		DashboardUC:    dashboardUC,
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

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("cierre de Redis")
	}

	log.Info().Msg("aplicación detenida")
}
