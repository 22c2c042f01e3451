package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/config"
	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
	"github.com/munjed80/Fancy-foods-app/internal/router"
	"github.com/munjed80/Fancy-foods-app/internal/service"
	"github.com/munjed80/Fancy-foods-app/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Settings live in the database; load them before anything that sends mail.
	settingsRepo := repository.NewSettingsRepository(db)
	settingsSvc, err := service.NewSettingsService(ctx, settingsRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	mailer := infra.NewMailer()
	archive := infra.NewEmailArchive(cfg.EmailsPath)
	attachments := infra.NewAttachmentStore(cfg.AttachmentsPath)

	// Goroutine worker pool for async mail delivery. Wired here (composition
	// root) so the pool shares the settings mirror and archive with the API.
	dispatcher := worker.NewDispatcher(rdb)
	handlers := &worker.Handlers{
		Email: worker.NewEmailWorker(mailer, archive, settingsSvc),
	}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, settingsSvc, dispatcher, attachments, archive)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("FancyFoods backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
