package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lucky_casino/internal/config"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	loadErr := config.Load(".env")
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	defer func() { _ = log.Sync() }()
	if loadErr != nil {
		log.Info("no .env file, using process environment", zap.Error(loadErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := multierr.Combine(runErr, srv.Shutdown(shutdownCtx), s.ServiceProvider.Close())
	if err != nil {
		log.Error("server stopped with errors", zap.Error(err))
	}
	return err
}
