package httpserver

import (
	"context"
	"sync"
	"time"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"

	"github.com/shopspring/decimal"
)

var _ application.QuoteRepo = (*fakeQuoteRepo)(nil)

type fakeQuoteRepo struct {
	mu   sync.Mutex
	rows []domain.Quote
	err  error
}

func (f *fakeQuoteRepo) Create(_ context.Context, q domain.Quote) (domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q.CreatedAt = time.Now().UTC()
	f.rows = append(f.rows, q)
	return q, nil
}

func (f *fakeQuoteRepo) GetLatest(_ context.Context, coin domain.Coin) (domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Coin == coin {
			return f.rows[i], nil
		}
	}
	return domain.Quote{}, application.ErrNotFound
}

func (f *fakeQuoteRepo) ListRecentPrices(_ context.Context, coin domain.Coin, limit int) ([]domain.PricePoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.PricePoint
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].Coin == coin {
			out = append(out, domain.PricePoint{Price: f.rows[i].PriceUSD, CreatedAt: f.rows[i].CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) add(coin domain.Coin, price, mcap, change string) {
	_, _ = f.Create(context.Background(), domain.Quote{
		Coin:             coin,
		PriceUSD:         decimal.RequireFromString(price),
		MarketCapUSD:     decimal.RequireFromString(mcap),
		Change24hPercent: decimal.RequireFromString(change),
	})
}

func NewInMemoryService() (*application.StatsService, *fakeQuoteRepo) {
	qr := &fakeQuoteRepo{}
	return application.NewStatsService(qr, domain.DefaultCoins()), qr
}
