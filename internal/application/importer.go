package application

import (
	"context"
	"fmt"

	"cryptostats-service/internal/domain"

	"go.uber.org/zap"
)

var _ QuoteImporter = (*Importer)(nil)

type Importer struct {
	quotes   QuoteRepo
	provider PriceProvider
	coins    domain.CoinSet
	log      *zap.Logger
}

func NewImporter(quotes QuoteRepo, provider PriceProvider, coins domain.CoinSet, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{quotes: quotes, provider: provider, coins: coins, log: log.With(zap.String("component", "importer"))}
}

// ImportAll runs one fetch cycle. An upstream failure aborts the cycle with
// ErrFetch; per-coin gaps and save failures are logged and skipped.
func (i *Importer) ImportAll(ctx context.Context) ([]domain.Quote, error) {
	coins := i.coins.IDs()
	readings, err := i.provider.SimplePrices(ctx, coins)
	if err != nil {
		i.log.Error("import.fetch_failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	saved := make([]domain.Quote, 0, len(coins))
	for _, coin := range coins {
		log := i.log.With(zap.String("coin", string(coin)))
		q, ok := readings[coin].Quote(coin)
		if !ok {
			log.Warn("import.data_missing")
			continue
		}
		if err := q.Validate(); err != nil {
			log.Warn("import.invalid_quote", zap.Error(err))
			continue
		}
		out, err := i.quotes.Create(ctx, q)
		if err != nil {
			log.Error("import.save_failed", zap.Error(fmt.Errorf("%w: %w", ErrPersistence, err)))
			continue
		}
		log.Info("import.coin_saved", zap.String("price_usd", out.PriceUSD.String()))
		saved = append(saved, out)
	}
	i.log.Info("import.done", zap.Int("saved", len(saved)), zap.Int("coins", len(coins)))
	return saved, nil
}
