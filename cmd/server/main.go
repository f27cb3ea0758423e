package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/logger"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := repository.NewCatalogRepo(repository.DefaultMovies())
	seats := repository.NewSeatRepo(catalog.IDs(), cfg.SeatsPerMovie)
	bookings := repository.NewBookingRepo()

	var notifier service.BookingNotifier = queue.NopNotifier{}
	if cfg.Queue.Enabled {
		notifier = queue.NewPublisher(cfg.Queue.URL, log)
		if cfg.Queue.ConsumerEnabled {
			consumer := queue.NewConsumer(cfg.Queue.URL, cfg.Queue.BookingLogPath, log)
			go func() {
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("booking consumer stopped", slog.Any("err", err))
				}
			}()
		}
	}
	svc := service.NewBookingService(catalog, seats, bookings, notifier, log)

	var moviesCache echo.MiddlewareFunc
	if cfg.Cache.Enabled {
		rdb := config.NewRedisClient(ctx, cfg.Redis)
		if rdb == nil {
			log.Warn("redis unavailable, response cache disabled", slog.String("addr", cfg.Redis.Addr))
		} else {
			defer rdb.Close()
			moviesCache = middleware.NewRedisCache(cfg.Cache, rdb)
		}
	}

	static, err := handler.NewStatic(cfg.WebRoot, log)
	if err != nil {
		return fmt.Errorf("web root: %w", err)
	}

	e := router.New(router.Deps{
		Handler:     handler.NewHandler(svc, log),
		Static:      static,
		MoviesCache: moviesCache,
		Log:         log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.PrintBanner(os.Stdout, cfg.Addr(), cfg.WebRoot, router.Endpoints)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", slog.String("addr", srv.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
