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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/UDDITwork/FINREP-sub006/internal/application/auth"
	"github.com/UDDITwork/FINREP-sub006/internal/application/ports"
	"github.com/UDDITwork/FINREP-sub006/internal/application/report"
	"github.com/UDDITwork/FINREP-sub006/internal/application/usecase"
	infraai "github.com/UDDITwork/FINREP-sub006/internal/infrastructure/ai"
	inframongo "github.com/UDDITwork/FINREP-sub006/internal/infrastructure/mongo"
	infrapdf "github.com/UDDITwork/FINREP-sub006/internal/infrastructure/pdf"
	"github.com/UDDITwork/FINREP-sub006/internal/infrastructure/postgres"
	httpRouter "github.com/UDDITwork/FINREP-sub006/internal/interfaces/http"
	"github.com/UDDITwork/FINREP-sub006/pkg/config"
	"github.com/UDDITwork/FINREP-sub006/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	// PostgreSQL: identidad de asesores y branding.
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema PostgreSQL")
	}

	// MongoDB: clientes y registros por servicio.
	mongoCtx, cancelMongo := context.WithTimeout(ctx, 15*time.Second)
	mdb, err := inframongo.Connect(mongoCtx, cfg.Mongo)
	cancelMongo()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = mdb.Close(context.Background()) }()
	if cfg.Mongo.EnsureIndexes {
		if err := mdb.EnsureIndexes(ctx); err != nil {
			log.Error().Err(err).Msg("índices MongoDB")
		}
	}

	advisorRepo := postgres.NewAdvisorRepository(pool)
	brandingRepo := postgres.NewBrandingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	clientRepo := inframongo.NewClientRepository(mdb)

	agg := report.NewAggregator(report.Accessors{
		Clients:    clientRepo,
		Branding:   brandingRepo,
		Onboarding: inframongo.NewOnboardingRepository(mdb),
		Letters:    inframongo.NewEngagementLetterRepository(mdb),
		Plans:      inframongo.NewFinancialPlanRepository(mdb),
		Meetings:   inframongo.NewMeetingRepository(mdb),
		Exits:      inframongo.NewExitStrategyRepository(mdb),
		Taxes:      inframongo.NewTaxPlanRepository(mdb),
		Chats:      inframongo.NewChatRepository(mdb),
		KYC:        inframongo.NewKYCRepository(mdb),
	}, report.Options{
		SectionTimeout: cfg.Report.SectionTimeout,
		MaxParallel:    cfg.Report.MaxParallel,
		AllowPartial:   cfg.Report.AllowPartial,
	}, log)

	// PDF: reporte imprimible para el cliente
	pdfUC := report.NewPDFUseCase(agg, infrapdf.NewMarotoPDFGenerator())

	var aiUC *usecase.AIUseCase
	if llm := newLLM(cfg.AI); llm != nil {
		aiUC = usecase.NewAIUseCase(agg, llm, cfg.AI.Timeout)
	} else {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("insights IA deshabilitados: falta API key")
	}

	authUC := auth.NewAuthUseCase(advisorRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	resp := httpRouter.NewResponder(log, cfg.App.IsProduction())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: resp.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FINREP Reports API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   usecase.NewClientUseCase(clientRepo),
		Aggregator: agg,
		ReportPDF:  pdfUC,
		AIUC:       aiUC,
		Health: httpRouter.NewHealthHandler(cfg.App.Name, map[string]httpRouter.Pinger{
			"postgres": pool.Ping,
			"mongo":    mdb.Ping,
		}, log),
		Responder: resp,
		JWTSecret: cfg.JWT.Secret,
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

// newLLM elige el proveedor según AI_PROVIDER; nil si no hay API key.
func newLLM(cfg config.AIConfig) ports.LLMService {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
}
