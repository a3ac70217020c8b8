package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/beautybook/marketplace/internal/api"
	"github.com/beautybook/marketplace/internal/core/ports"
	"github.com/beautybook/marketplace/internal/core/service"
	"github.com/beautybook/marketplace/internal/infrastructure/catalog"
	"github.com/beautybook/marketplace/internal/infrastructure/config"
	"github.com/beautybook/marketplace/internal/infrastructure/db/memory"
	mongostore "github.com/beautybook/marketplace/internal/infrastructure/db/mongo"
	redisstore "github.com/beautybook/marketplace/internal/infrastructure/db/redis"
	"github.com/beautybook/marketplace/internal/infrastructure/directory"
	"github.com/beautybook/marketplace/internal/infrastructure/http/handlers"
	"github.com/beautybook/marketplace/internal/infrastructure/queue"
	"github.com/beautybook/marketplace/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the marketplace HTTP API.

Configuration is read from the environment (PORT, STORE_BACKEND, SESSION_SECRET, ...).

Examples:
  marketplace serve
  STORE_BACKEND=redis REDIS_ADDR=localhost:6379 marketplace serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "marketplace",
		Env:     cfg.Env,
	})

	kv, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	dir, err := directory.New(bcrypt.DefaultCost, time.Now().UTC())
	if err != nil {
		return err
	}
	providers, err := catalog.Default()
	if err != nil {
		return err
	}

	clock := service.SystemClock{}
	sessions := service.NewSessionStore(kv)
	identity := service.NewIdentityService(dir, sessions, clock, cfg.AuthVerifyPasswords, log)
	bookings := service.NewBookingService(sessions, providers, clock, log)
	payments := service.NewPaymentSimulator(clock, service.SystemRandom{}, bookings, log)
	catalogService := service.NewCatalogService(providers, sessions, log)

	// Workers outlive the signal context so that shutdown can drain them
	// after the listener is closed.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.PaymentWorkers, payments, clock, log)
	dispatcher.Start(workerCtx)
	go payments.RunEviction(workerCtx, cfg.PaymentAttemptTTL)

	e := api.NewRouter(api.Deps{
		Identity:      identity,
		Bookings:      bookings,
		Catalog:       catalogService,
		Payments:      payments,
		Sessions:      sessions,
		Queue:         dispatcher,
		Ready:         map[string]handlers.Pinger{"store": kv},
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		AuthRateLimit: cfg.AuthRateLimit,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		stopWorkers()
		dispatcher.Wait()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	stopWorkers()
	dispatcher.Wait()

	log.Info().Msg("server stopped")
	return nil
}

// openStore connects the configured session backend. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewKVStore(client, cfg.SessionTTL), func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("redis close")
			}
		}, nil

	case config.BackendMongo:
		db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		client := db.Client()
		store := mongostore.NewKVStore(db, cfg.SessionTTL)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return store, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}, nil

	default:
		log.Warn().Msg("memory session store: state is lost on restart")
		return memory.NewKVStore(), func() {}, nil
	}
}
