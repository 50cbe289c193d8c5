// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/unclebandit/lifecare-cockpit/internal/config"
	"github.com/unclebandit/lifecare-cockpit/internal/controller"
	"github.com/unclebandit/lifecare-cockpit/internal/handler"
	"github.com/unclebandit/lifecare-cockpit/internal/logging"
	"github.com/unclebandit/lifecare-cockpit/internal/queue"
	"github.com/unclebandit/lifecare-cockpit/internal/service"
	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

func main() {
	cfg, cfgErr := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("some settings were invalid, using defaults", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	seed, err := loadSeed(cfg)
	if err != nil {
		return err
	}
	st := store.New(seed)

	q, closeQueue, err := openQueue(cfg, logger)
	if err != nil {
		return err
	}
	defer closeQueue()

	feed := queue.NewActivityFeed(cfg.ActivityFeedSize)
	if err := queue.StartActivitySubscriber(q, feed, logger); err != nil {
		return err
	}

	cockpitService := &service.CockpitService{
		Store:          st,
		Queue:          q,
		Logger:         logger,
		AssistantDelay: cfg.AssistantDelay,
	}

	cockpitController := &controller.CockpitController{
		CockpitService:   cockpitService,
		AssistantLimiter: rate.NewLimiter(rate.Limit(cfg.AssistantRate), cfg.AssistantBurst),
	}

	dashboardHandler := &handler.DashboardHandler{
		Service:  cockpitService,
		Activity: feed,
		Logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	cockpitController.Mount(r)
	dashboardHandler.Mount(r)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func loadSeed(cfg config.Config) (store.Seed, error) {
	if cfg.SeedFile == "" {
		return store.DefaultSeed(time.Now(), uuid.NewString), nil
	}
	return store.LoadSeedFile(cfg.SeedFile)
}

// openQueue prefers RabbitMQ when configured and falls back to the
// in-memory queue otherwise.
func openQueue(cfg config.Config, logger *zap.Logger) (queue.Queue, func(), error) {
	if cfg.AMQPURL == "" {
		q := queue.NewInMemoryQueue(logger)
		return q, q.Wait, nil
	}

	q, err := queue.DialAMQP(cfg.AMQPURL, logger)
	if err != nil {
		return nil, nil, err
	}
	q.Route(queue.WorkflowTopic, cfg.AMQPQueue)
	logger.Info("connected to queue", zap.String("queue", cfg.AMQPQueue))
	return q, func() {
		if err := q.Close(); err != nil {
			logger.Warn("failed to close queue", zap.Error(err))
		}
	}, nil
}
