package application

import (
	"context"

	"cryptostats-service/internal/domain"
)

type QuoteRepo interface {
	// Create stores q and returns it with the store assigned CreatedAt.
	Create(ctx context.Context, q domain.Quote) (domain.Quote, error)
	GetLatest(ctx context.Context, coin domain.Coin) (domain.Quote, error)
	// ListRecentPrices returns up to limit prices, newest first.
	ListRecentPrices(ctx context.Context, coin domain.Coin, limit int) ([]domain.PricePoint, error)
}

type PriceProvider interface {
	// SimplePrices fetches readings for all coins in one upstream call.
	SimplePrices(ctx context.Context, coins []domain.Coin) (map[domain.Coin]domain.Reading, error)
}

type QuoteImporter interface {
	ImportAll(ctx context.Context) ([]domain.Quote, error)
}
