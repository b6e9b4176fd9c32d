package bootstrap

import (
	"context"
	"testing"
	"time"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/config"
	"cryptostats-service/internal/domain"
	"cryptostats-service/internal/infrastructure/provider"
	redisstore "cryptostats-service/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProvideStorage_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := config.Config{Storage: "redis", RedisAddr: mr.Addr(), RedisKeyPrefix: "t:"}
	s, cleanup, err := ProvideStorage(context.Background(), zap.NewNop(), cfg)
	require.NoError(t, err)
	defer cleanup()
	require.IsType(t, &redisstore.QuoteStore{}, s.Quotes)
	require.NoError(t, s.Ping(context.Background()))
}

func TestProvideStorage_Errors(t *testing.T) {
	_, cleanup, err := ProvideStorage(context.Background(), zap.NewNop(), config.Config{Storage: "pg"})
	require.ErrorIs(t, err, ErrMissingDBURL)
	cleanup()

	_, cleanup, err = ProvideStorage(context.Background(), zap.NewNop(), config.Config{Storage: "mongo"})
	require.ErrorIs(t, err, ErrUnsupportedStorage)
	cleanup()
}

func TestProvidePriceProvider(t *testing.T) {
	require.IsType(t, &provider.Fake{}, ProvidePriceProvider(config.Config{Provider: "fake"}, zap.NewNop()))
	cg := ProvidePriceProvider(config.Config{Provider: "coingecko", CoinGeckoAPIBase: "https://api.coingecko.com"}, zap.NewNop())
	require.IsType(t, &provider.CoinGeckoProvider{}, cg)
}

func TestProvideAPI_SchedulerToggle(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := config.Config{
		Port:             "0",
		Storage:          "redis",
		Provider:         "fake",
		RedisAddr:        mr.Addr(),
		FetchInterval:    time.Hour,
		SchedulerEnabled: true,
	}
	log := zap.NewNop()
	s, cleanup, err := ProvideStorage(context.Background(), log, cfg)
	require.NoError(t, err)
	defer cleanup()

	repo := ProvideQuoteRepo(s)
	imp := ProvideImporter(repo, ProvidePriceProvider(cfg, log), ProvideCoins(), log)
	sched := ProvideScheduler(imp, cfg, log)
	srv := ProvideServer(ProvideStatsService(repo, ProvideCoins()), s)

	api := ProvideAPI(cfg, log, srv, sched)
	require.NotNil(t, api.Scheduler)
	require.Equal(t, ":0", api.Addr)

	cfg.SchedulerEnabled = false
	require.Nil(t, ProvideAPI(cfg, log, srv, sched).Scheduler)

	saved, err := imp.ImportAll(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 3)
	q, err := repo.GetLatest(context.Background(), domain.Ethereum)
	require.NoError(t, err)
	require.Equal(t, "1.2345", q.PriceUSD.String())
}

func TestAPI_RunStopsOnCancel(t *testing.T) {
	started := make(chan struct{})
	api := &API{
		Addr:      "127.0.0.1:0",
		Handler:   nil,
		Scheduler: workerFunc(func(ctx context.Context) { close(started); <-ctx.Done() }),
		Log:       zap.NewNop(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- api.Run(ctx) }()

	<-started
	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("API.Run did not return")
	}
}

type workerFunc func(ctx context.Context)

func (f workerFunc) Start(ctx context.Context) { f(ctx) }

var _ application.Worker = workerFunc(nil)
