// Command api runs the parameter-tour HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paramtour/paramtour/internal/config"
	"github.com/paramtour/paramtour/internal/handler"
	"github.com/paramtour/paramtour/internal/logger"
	"github.com/paramtour/paramtour/internal/middleware"
	"github.com/paramtour/paramtour/internal/repository"
	"github.com/paramtour/paramtour/internal/router"
	"github.com/paramtour/paramtour/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Root context canceled on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		// The logger is configured from config, so it isn't available yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)
	repos := repository.NewRepositories()
	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, repos)

	e := router.Setup(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}
