package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}

	app, err := appcontext.New(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init application")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Serve()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("signal received")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}

	log.Info().Msg("server stopped")
}
