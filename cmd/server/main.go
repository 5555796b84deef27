package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zapastock/internal/config"
	"zapastock/internal/infra"
	"zapastock/internal/router"
	"zapastock/internal/worker"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}
	if cfg.Env != "production" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	redisClient, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a redis")
	}

	// Worker pool de alertas de stock
	mailer := infra.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	breaker := infra.NewCircuitBreaker(5, time.Minute)
	enviador := worker.NewEnviadorAlertas(mailer, breaker, cfg.AlertasEmail, cfg.StockBajoLimite)
	pool := worker.NewPool(redisClient, enviador, cfg.WorkerPoolSize, log)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	engine := router.New(router.Dependencies{
		Config:      cfg,
		DB:          db,
		Notificador: worker.NewDispatcher(redisClient),
		Log:         log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("fallo el servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado forzado del servidor")
	}

	cancel()
	pool.Wait()

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("error cerrando redis")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("apagado completo")
}
