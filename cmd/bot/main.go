package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wager-tracker/config"
	"wager-tracker/internal/adapter/metrics"
	pgStorage "wager-tracker/internal/adapter/storage/postgres"
	redisStorage "wager-tracker/internal/adapter/storage/redis"
	"wager-tracker/internal/adapter/telegram"
	"wager-tracker/internal/core/ports"
	"wager-tracker/internal/service"
	"wager-tracker/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Participants.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid participants configuration")
	}
	if cfg.Telegram.Token == "" {
		log.Fatal().Msg("telegram.token must be set (WGR_TELEGRAM_TOKEN)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare schema")
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	wagerRepo := pgStorage.NewWagerRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	eventRepo := pgStorage.NewWagerEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	roster := cfg.Participants.Roster()
	wagerSvc := service.NewWagerService(wagerRepo, ledgerRepo, eventRepo, transactor, recorder, roster, log)
	statsSvc := service.NewStatisticsService(ledgerRepo, wagerRepo, roster, log)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Telegram client")
	}
	api.Debug = cfg.Telegram.Debug
	log.Info().Str("account", api.Self.UserName).Msg("Authorized on Telegram")

	bot := telegram.NewBot(
		api,
		wagerSvc,
		statsSvc,
		redisStorage.NewSessionStore(rdb, cfg.Session.TTL),
		redisStorage.NewDebouncer(rdb),
		roster,
		log,
	)

	metricsSrv := metrics.NewServer(cfg.Metrics.Addr, reg, []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	})
	metrics.Serve(metricsSrv, log)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.UpdateTimeout
	updates := api.GetUpdatesChan(u)

	log.Info().Msg("Bot started")
	bot.Run(ctx, updates)

	api.StopReceivingUpdates()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Metrics server forced to shutdown")
	}
	log.Info().Msg("Bot stopped")
}
