package bootstrap

import (
	"context"
	"fmt"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/config"
	"cryptostats-service/internal/domain"
	httpserver "cryptostats-service/internal/infrastructure/http"
	"cryptostats-service/internal/infrastructure/httpx"
	"cryptostats-service/internal/infrastructure/logx"
	"cryptostats-service/internal/infrastructure/pg"
	"cryptostats-service/internal/infrastructure/provider"
	redisstore "cryptostats-service/internal/infrastructure/redis"
	"cryptostats-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Storage bundles the selected quote repository with its readiness probe.
type Storage struct {
	Quotes application.QuoteRepo
	Ping   func(ctx context.Context) error
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideCoins() domain.CoinSet { return domain.DefaultCoins() }

// ProvideStorage opens the backend named by STORAGE ("pg" or "redis").
func ProvideStorage(ctx context.Context, log *zap.Logger, cfg config.Config) (Storage, func(), error) {
	switch cfg.Storage {
	case "", "pg":
		db, cleanup, err := ProvideDB(ctx, log, cfg)
		if err != nil {
			return Storage{}, func() {}, err
		}
		return Storage{Quotes: pg.NewQuoteRepo(db), Ping: db.Ping}, cleanup, nil
	case "redis":
		client, cleanup := ProvideRedisClient(cfg)
		store := redisstore.New(client, cfg.RedisKeyPrefix)
		if err := store.Ping(ctx); err != nil {
			cleanup()
			return Storage{}, func() {}, fmt.Errorf("redis ping: %w", err)
		}
		return Storage{Quotes: store, Ping: store.Ping}, cleanup, nil
	default:
		return Storage{}, func() {}, fmt.Errorf("%w: %q", ErrUnsupportedStorage, cfg.Storage)
	}
}

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		if log != nil {
			log.Info("closing pg")
		}
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideRedisClient(cfg config.Config) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client, func() { _ = client.Close() }
}

func ProvideQuoteRepo(s Storage) application.QuoteRepo { return s.Quotes }

func ProvidePriceProvider(cfg config.Config, log *zap.Logger) application.PriceProvider {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(1.2345)
	default:
		return &provider.CoinGeckoProvider{
			BaseURL: cfg.CoinGeckoAPIBase,
			APIKey:  cfg.CoinGeckoAPIKey,
			Client:  httpx.New(cfg.RequestTimeout, log.With(zap.String("upstream", "coingecko"))),
		}
	}
}

func ProvideImporter(repo application.QuoteRepo, rp application.PriceProvider, coins domain.CoinSet, log *zap.Logger) *application.Importer {
	return application.NewImporter(repo, rp, coins, log)
}

func ProvideStatsService(repo application.QuoteRepo, coins domain.CoinSet) *application.StatsService {
	return application.NewStatsService(repo, coins)
}

func ProvideServer(svc *application.StatsService, s Storage) *httpserver.Server {
	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(s.Ping)
	return srv
}

func ProvideScheduler(imp *application.Importer, cfg config.Config, log *zap.Logger) *worker.Scheduler {
	return &worker.Scheduler{
		Importer:     imp,
		Interval:     cfg.FetchInterval,
		CycleTimeout: cfg.FetchTimeout,
		RunOnStart:   cfg.FetchOnStart,
		Log:          log.With(zap.String("worker", "scheduler")),
	}
}

func ProvideWorker(s *worker.Scheduler) application.Worker { return s }

func ProvideAPI(cfg config.Config, log *zap.Logger, srv *httpserver.Server, s *worker.Scheduler) *API {
	a := &API{Addr: ":" + cfg.Port, Handler: httpserver.NewRouter(srv), Log: log}
	if cfg.SchedulerEnabled {
		a.Scheduler = s
	}
	return a
}
