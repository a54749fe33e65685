package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"health-assistant-api/internal/config"
	"health-assistant-api/internal/handler"
	chatHandler "health-assistant-api/internal/handler/chat"
	dashboardHandler "health-assistant-api/internal/handler/dashboard"
	healthlogHandler "health-assistant-api/internal/handler/healthlog"
	medicationHandler "health-assistant-api/internal/handler/medication"
	vitalsignHandler "health-assistant-api/internal/handler/vitalsign"
	"health-assistant-api/internal/middleware"
	"health-assistant-api/internal/repository/postgres"
	"health-assistant-api/internal/router"
	"health-assistant-api/internal/service/chat"
	"health-assistant-api/internal/service/dashboard"
	"health-assistant-api/internal/service/healthlog"
	"health-assistant-api/internal/service/medication"
	"health-assistant-api/internal/service/vitalsign"
	"health-assistant-api/internal/session"
	"health-assistant-api/pkg/logger"
	"health-assistant-api/pkg/metrics"
	"health-assistant-api/pkg/openai"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)
	appMetrics := metrics.NewMetrics("health_assistant")

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	healthLogRepo := postgres.NewHealthLogRepository(db)
	medicationRepo := postgres.NewMedicationReminderRepository(db)
	vitalSignRepo := postgres.NewVitalSignRepository(db)

	// Initialize session store
	var store session.Store
	if cfg.Session.UseRedis {
		store, err = session.NewRedisStore(cfg.Redis.URL, cfg.Session.TTL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL)
	}

	// Initialize services
	completer := openai.NewClient(cfg.OpenAI)
	chatSvc := chat.NewService(completer, appLogger, appMetrics)
	dashboardSvc := dashboard.NewService(healthLogRepo, medicationRepo, vitalSignRepo)
	healthLogSvc := healthlog.NewService(healthLogRepo)
	medicationSvc := medication.NewService(medicationRepo)
	vitalSignSvc := vitalsign.NewService(vitalSignRepo)

	// Initialize handlers
	h := handler.NewHandler(db)
	chatH := chatHandler.NewHandler(chatSvc, store)
	dashboardH := dashboardHandler.NewHandler(dashboardSvc, 30*time.Second)
	healthLogH := healthlogHandler.NewHandler(healthLogSvc)
	medicationH := medicationHandler.NewHandler(medicationSvc)
	vitalSignH := vitalsignHandler.NewHandler(vitalSignSvc)

	// Setup router
	r := router.NewRouter(
		chatH,
		dashboardH,
		healthLogH,
		medicationH,
		vitalSignH,
		h,
		router.RouterConfig{
			RateLimit:      100,
			RateBurst:      200,
			RequestTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "health_assistant_http",
			Session:        cfg.Session,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
