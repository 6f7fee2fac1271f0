package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dealwise/car-price-advisor/internal/api/handlers"
	"github.com/dealwise/car-price-advisor/internal/api/middleware"
	"github.com/dealwise/car-price-advisor/internal/config"
	"github.com/dealwise/car-price-advisor/internal/engine"
	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	"github.com/dealwise/car-price-advisor/internal/notify"
	"github.com/dealwise/car-price-advisor/internal/store"
	"github.com/dealwise/car-price-advisor/pkg/logger"
	"github.com/dealwise/car-price-advisor/pkg/pricing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and recall scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	nhtsaClient := nhtsa.NewHTTPClient(
		nhtsa.WithDecodeURL(cfg.NHTSA.DecodeURL),
		nhtsa.WithRecallsURL(cfg.NHTSA.RecallsURL),
		nhtsa.WithHTTPClient(&http.Client{Timeout: cfg.NHTSA.Timeout}),
		nhtsa.WithRateLimiter(nhtsa.NewRateLimiter(
			cfg.NHTSA.RateLimit.PerSecond,
			cfg.NHTSA.RateLimit.Burst,
			cfg.NHTSA.RateLimit.DailyLimit,
		)),
	)

	currentYear := cfg.Pricing.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	estimator := pricing.NewEstimator(currentYear)

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		log.Info("discord notifications enabled")
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	eng := engine.NewEngine(st, nhtsaClient, estimator, notifier,
		engine.WithLogger(log),
		engine.WithRecallRefreshBatch(cfg.Schedule.RecallRefreshBatch),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.RecallRefreshInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Car Price Advisor API", Version))
	handlers.RegisterEstimateRoutes(api, handlers.NewEstimatesHandler(eng, st))
	handlers.RegisterComparisonRoutes(api, handlers.NewComparisonsHandler(eng, st))
	handlers.RegisterVehicleRoutes(api, handlers.NewVehiclesHandler(eng))
	handlers.RegisterTriggerRoutes(api, handlers.NewRecallRefreshHandler(eng))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "current_year", currentYear)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
