package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brokerhq/commission-service/internal/config"
	"github.com/brokerhq/commission-service/internal/infrastructure/kafka"
	"github.com/brokerhq/commission-service/internal/infrastructure/logger"
	"github.com/brokerhq/commission-service/internal/infrastructure/metrics"
	"github.com/brokerhq/commission-service/internal/infrastructure/migrate"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres"
	"github.com/brokerhq/commission-service/internal/infrastructure/postgres/repository"
	"github.com/brokerhq/commission-service/internal/usecase"
	"github.com/brokerhq/commission-service/internal/usecase/rules"
)

func setupLogger(cfg *config.CommissionConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	engineMetrics := usecase.NewEngineMetrics(metrics.NewCommissionMetrics())
	eventLogger := logger.NewPGEngineEventLogger(db)

	// Init repositories
	adviserRepo := repository.NewDefaultAdviserRepository(db)
	saleRepo := repository.NewDefaultSaleRepository(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	modifierRepo := repository.NewDefaultModifierRepository(db)
	vestingRepo := repository.NewDefaultVestingRepository(db)

	// Init usecases
	adviserUsecase := usecase.NewDefaultAdviserUsecase(adviserRepo)

	rateConfig := cfg.RateConfig()
	commissionRules := []rules.CommissionRule{
		rules.NewPercentageDeltaOverride(),
		rules.NewHierarchicalFlatBonus(),
		rules.NewPerformanceKpiBonus(),
		rules.NewProductCategoryBonus(),
	}

	commissionUsecase := usecase.NewDefaultCommissionUsecase(
		saleRepo,
		commissionRepo,
		catalogRepo,
		adviserUsecase,
		commissionRules,
		rateConfig,
		pub,
		engineMetrics,
	)
	commissionUsecase.Audit = eventLogger

	clawbackUsecase := usecase.NewDefaultClawbackUsecase(
		saleRepo,
		commissionRepo,
		modifierRepo,
		pub,
		engineMetrics,
	)
	clawbackUsecase.Audit = eventLogger

	saleUsecase := usecase.NewDefaultSaleUsecase(saleRepo, commissionUsecase, clawbackUsecase)
	vestingUsecase := usecase.NewDefaultVestingUsecase(vestingRepo, commissionRepo)

	ingestionUsecase, err := usecase.NewDefaultIngestionUsecase(saleRepo, commissionUsecase, eventLogger, engineMetrics)
	if err != nil {
		log.Fatalf("failed to init ingestion usecase: %v", err)
	}

	// Statement ingestion consumer
	go func() {
		if err := sub.ConsumeStatements(context.Background(), "commission-engine", ingestionUsecase); err != nil {
			slog.Error("statement consumer stopped", "error", err.Error())
		}
	}()

	// CRM sale status consumer
	go func() {
		if err := sub.ConsumeSaleEvents(context.Background(), "commission-engine", saleUsecase); err != nil {
			slog.Error("sale event consumer stopped", "error", err.Error())
		}
	}()

	// Expiry reminder worker
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Workers.ReminderIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		window := time.Duration(cfg.Workers.ReminderWindowDays) * 24 * time.Hour
		for range ticker.C {
			sent, err := saleUsecase.SendExpiryReminders(context.Background(), window)
			if err != nil {
				slog.Error("expiry reminder run failed", "error", err.Error())
				continue
			}
			if sent > 0 {
				slog.Info("expiry reminders sent", "count", sent)
			}
		}
	}()

	// Scheduled payout release worker
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Workers.PayoutIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			released, err := vestingUsecase.ReleaseDuePayouts(time.Now())
			if err != nil {
				slog.Error("payout release run failed", "error", err.Error())
				continue
			}
			if released > 0 {
				slog.Info("scheduled payouts released", "count", released)
			}
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	http.Handle("/metrics", promhttp.Handler())
	log.Printf("metrics server started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
