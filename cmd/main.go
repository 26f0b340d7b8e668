package main

// Package main ist der Einstiegspunkt der API von "arbeitszeit-meister".
// Es lädt die Konfiguration, öffnet Postgres- und Redis-Pools, setzt die Fiber-API
// mit Middleware und Routern auf und fährt beim Signal sauber herunter.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/db"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/Xenn-00/arbeitszeit-meister/internal/middleware"
	"github.com/Xenn-00/arbeitszeit-meister/internal/routers"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	// 0. I18N Einführung
	i18nSvc := i18n.NewInitI18nService()
	// 1. Konfiguration laden.
	cfg := config.LoadConfig()
	setLogLevel(cfg.APP.LogLevel)

	// 2. Postgres- und Redis-Pool erstellen.
	dbPool, err := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres-Pool konnte nicht erstellt werden")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis-Pool konnte nicht erstellt werden")
	}
	// 3. Paseto-Maker initialisieren, der Schlüssel wird mit dem Login-Dienst geteilt.
	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Paseto-Maker konnte nicht initialisiert werden")
	}

	// 4. Fiber-App mit ErrorHandler, RequestID-, Sprach- und Logger-Middleware.
	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	// 5. Routen registrieren.
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfg)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msg("Der Server konnte nicht gestartet werden")
			}
		}
	}()

	// 6. Graceful Shutdown bei SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	// Fiber zuerst, damit keine Handler mehr auf die Pools zugreifen.
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Beim Herunterfahren ist ein Fehler aufgetreten")
	}

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
