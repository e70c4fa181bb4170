package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/nongyiding-api/internal/application/analytics"
	"github.com/jhoicas/nongyiding-api/internal/application/ports"
	"github.com/jhoicas/nongyiding-api/internal/application/usecase"
	"github.com/jhoicas/nongyiding-api/internal/domain/entity"
	"github.com/jhoicas/nongyiding-api/internal/domain/order"
	"github.com/jhoicas/nongyiding-api/internal/domain/repository"
	"github.com/jhoicas/nongyiding-api/internal/domain/session"
	infraai "github.com/jhoicas/nongyiding-api/internal/infrastructure/ai"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/identity"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/nongyiding-api/internal/infrastructure/pdf"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/postgres"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/nongyiding-api/internal/infrastructure/sink"
	httpRouter "github.com/jhoicas/nongyiding-api/internal/interfaces/http"
	"github.com/jhoicas/nongyiding-api/pkg/config"
	"github.com/jhoicas/nongyiding-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// PostgreSQL es opcional: sin DB el catálogo es el de demostración.
	var pool *pgxpool.Pool
	if cfg.DB.Enabled() {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
	}

	products := loadCatalog(ctx, pool, log)

	var sessionRepo repository.SessionRepository
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.Redis.SessionTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones en Redis")
	} else {
		sessionRepo = memory.NewSessionRepository()
		log.Warn().Msg("REDIS_ADDR vacío: sesiones en memoria")
	}

	formatter := order.NewFormatter(language.Make(cfg.App.Locale))
	detector := order.NewDetector(decimal.NewFromFloat(cfg.Order.VarianceThreshold))
	machine := session.NewMachine(products, detector, formatter)

	chatUC := usecase.NewChatUseCase(
		sessionRepo, machine,
		newInterpreter(cfg.AI, products, log),
		newOrderSink(cfg.ERP, log),
		log,
		usecase.ChatConfig{InterpretTimeout: cfg.AI.Timeout, SinkTimeout: cfg.ERP.Timeout},
	)
	sessionUC := usecase.NewSessionUseCase(sessionRepo, usecase.SessionConfig{
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
		InitialBaseline:   decimal.NewFromInt(cfg.Order.InitialBaseline),
	})
	bindingUC := usecase.NewBindingUseCase(sessionRepo, machine, newVerifier(cfg.Binding, pool, log), log)
	priceUC := usecase.NewPriceUseCase(sessionRepo, products)
	slipUC := usecase.NewSlipUseCase(sessionRepo, newSlipGenerator(cfg.Slip, formatter, log))
	reportUC := analytics.NewReportUseCase(memory.NewReportRepository())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	if cfg.HTTP.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.HTTP.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.FilePath,
				Path:     "docs",
				Title:    "農易訂 API",
			}))
		} else {
			log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:     sessionUC,
		ChatUC:        chatUC,
		BindingUC:     bindingUC,
		PriceUC:       priceUC,
		SlipUC:        slipUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
		ChatPerMinute: cfg.RateLimit.ChatPerMinute,
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

// loadCatalog lee el catálogo una sola vez. Tabla vacía o sin DB: catálogo de demostración.
func loadCatalog(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) []entity.Product {
	var repo repository.CatalogRepository = memory.NewCatalogRepository(nil)
	if pool != nil {
		repo = postgres.NewCatalogRepository(pool)
	}
	products, err := repo.ListProducts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	if len(products) == 0 {
		log.Warn().Msg("catálogo vacío en PostgreSQL, usando el de demostración (ejecute cmd/seed_catalog)")
		products = memory.SeedProducts()
	}
	log.Info().Int("products", len(products)).Msg("catálogo cargado")
	return products
}

func newInterpreter(cfg config.AIConfig, products []entity.Product, log *logger.Logger) ports.IntentInterpreter {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Warn().Msg("ANTHROPIC_API_KEY vacío: el asistente responderá con aviso de sistema")
		}
		return infraai.NewAnthropicInterpreter(cfg.AnthropicAPIKey, cfg.AnthropicModel, products)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY vacío: el asistente responderá con aviso de sistema")
		}
		return infraai.NewGeminiInterpreter(cfg.GeminiAPIKey, cfg.GeminiModel, products)
	}
}

func newVerifier(cfg config.BindingConfig, pool *pgxpool.Pool, log *logger.Logger) ports.IdentityVerifier {
	if cfg.Verifier == "postgres" {
		if pool != nil {
			return postgres.NewCustomerRegistry(pool)
		}
		log.Warn().Msg("BINDING_VERIFIER=postgres sin base de datos, se usa el verificador por convención")
	}
	return identity.NewConventionVerifier(identity.ConventionConfig{
		AdminPrefix: cfg.AdminPrefix,
		NotFoundID:  cfg.NotFoundID,
		DisplayName: cfg.DisplayName,
		Latency:     cfg.Latency,
	})
}

func newOrderSink(cfg config.ERPConfig, log *logger.Logger) ports.OrderSink {
	if cfg.WebhookURL != "" {
		return sink.NewWebhookSink(cfg.WebhookURL, cfg.Timeout)
	}
	return sink.NewLogSink(log)
}

// newSlipGenerator devuelve nil (interfaz) si la fuente CJK no está disponible.
func newSlipGenerator(cfg config.SlipConfig, formatter *order.Formatter, log *logger.Logger) ports.OrderSlipGenerator {
	gen, err := infrapdf.NewMarotoSlipGenerator(cfg.FontPath, formatter)
	if err != nil {
		log.Warn().Err(err).Msg("comprobantes PDF desactivados")
		return nil
	}
	return gen
}
