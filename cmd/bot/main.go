package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/league-timekeeper-bot/internal/config"
	"github.com/diegoclair/league-timekeeper-bot/internal/database"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/contract"
	"github.com/diegoclair/league-timekeeper-bot/internal/domain/service"
	"github.com/diegoclair/league-timekeeper-bot/internal/handlers"
	"github.com/diegoclair/league-timekeeper-bot/internal/notifier"
	"github.com/diegoclair/league-timekeeper-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg)
	log.Logger = logger

	if envErr != nil {
		logger.Warn().Msg(".env file not found")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	logger.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	logger.Info().Msg("migrations completed successfully")

	sinks, closeSinks := buildNotifiers(cfg, logger)
	defer closeSinks()

	svc := service.NewInstance(
		database.NewInstance(db),
		sinks.WithRetry(logger),
		logger,
		service.Options{
			RearmAfter:    cfg.RearmAfter,
			StoreTimeout:  cfg.StoreTimeout,
			NotifyTimeout: cfg.NotifyTimeout,
		},
	)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recovered, err := svc.Timekeeper.Recover(shutdownCtx)
	if err != nil {
		logger.Error().Err(err).Int("recovered", recovered).Msg("failed to recover every countdown")
	} else {
		logger.Info().Int("recovered", recovered).Msg("countdowns recovered")
	}

	router := handlers.NewRouter(
		logger,
		handlers.New(svc.Timekeeper, cfg.SlackSigningSecret, logger),
		handlers.NewTimerHandler(svc.Timekeeper, cfg.APIToken),
	)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server crashed")
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to drain http server")
	}
	if err := svc.Timekeeper.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to stop timekeeper cleanly")
	}
	logger.Info().Msg("bye")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Str("app", "league-timekeeper").Logger()
}

// buildNotifiers creates the sinks listed in NOTIFIERS. A sink that cannot
// be set up is skipped so the countdowns keep running without it.
func buildNotifiers(cfg *config.Config, logger zerolog.Logger) (notifier.Multi, func()) {
	var (
		sinks   notifier.Multi
		closers []func()
	)

	if cfg.NotifierEnabled("slack") {
		var client contract.SlackClient = slack.New(cfg.SlackBotToken)
		sinks = append(sinks, notifier.NewSlack(client, cfg.NotifyRatePerSec))
	}

	if cfg.NotifierEnabled("discord") {
		session, err := notifier.NewDiscordSession(cfg.DiscordBotToken)
		if err != nil {
			logger.Error().Err(err).Msg("discord notifier disabled")
		} else {
			sinks = append(sinks, notifier.NewDiscord(session, cfg.DiscordChannels, cfg.NotifyRatePerSec))
			closers = append(closers, func() { _ = session.Close() })
		}
	}

	if cfg.NotifierEnabled("mqtt") {
		m, err := notifier.NewMQTT(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic)
		if err != nil {
			logger.Error().Err(err).Str("broker", cfg.MQTTBroker).Msg("mqtt notifier disabled")
		} else {
			sinks = append(sinks, m)
			closers = append(closers, m.Close)
		}
	}

	logger.Info().Int("sinks", len(sinks)).Strs("notifiers", cfg.Notifiers).Msg("notifiers configured")

	return sinks, func() {
		for _, c := range closers {
			c()
		}
	}
}
