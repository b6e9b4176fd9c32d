package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"cryptostats-service/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrRepo     = errors.New("repo error")
	ErrUpstream = errors.New("upstream error")
)

type fakeQuoteRepo struct {
	mu      sync.Mutex
	rows    []domain.Quote
	err     error
	failFor map[domain.Coin]bool
	clock   time.Time
	// lastLimit records the limit passed to ListRecentPrices.
	lastLimit int
}

func (f *fakeQuoteRepo) Create(_ context.Context, q domain.Quote) (domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	if f.failFor[q.Coin] {
		return domain.Quote{}, ErrRepo
	}
	if f.clock.IsZero() {
		f.clock = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	f.clock = f.clock.Add(time.Second)
	q.CreatedAt = f.clock
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
	return domain.Quote{}, ErrNotFound
}

func (f *fakeQuoteRepo) ListRecentPrices(_ context.Context, coin domain.Coin, limit int) ([]domain.PricePoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
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

func (f *fakeQuoteRepo) count(coin domain.Coin) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rows {
		if r.Coin == coin {
			n++
		}
	}
	return n
}

type fakePriceProvider struct {
	out   map[domain.Coin]domain.Reading
	err   error
	asked []domain.Coin
	calls int
}

func (f *fakePriceProvider) SimplePrices(_ context.Context, coins []domain.Coin) (map[domain.Coin]domain.Reading, error) {
	f.calls++
	f.asked = coins
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func reading(price, mcap, change string) domain.Reading {
	nd := func(s string) decimal.NullDecimal {
		if s == "" {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	return domain.Reading{PriceUSD: nd(price), MarketCapUSD: nd(mcap), Change24hPercent: nd(change)}
}

func quote(coin domain.Coin, price string) domain.Quote {
	return domain.Quote{
		Coin:             coin,
		PriceUSD:         decimal.RequireFromString(price),
		MarketCapUSD:     decimal.NewFromInt(1000),
		Change24hPercent: decimal.RequireFromString("0.5"),
	}
}
