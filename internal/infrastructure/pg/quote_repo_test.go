package pg_test

import (
	"context"
	"fmt"
	"testing"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"
	"cryptostats-service/internal/infrastructure/pg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newQuote(coin domain.Coin, price string) domain.Quote {
	return domain.Quote{
		Coin:             coin,
		PriceUSD:         decimal.RequireFromString(price),
		MarketCapUSD:     decimal.RequireFromString("1327479877967.8"),
		Change24hPercent: decimal.RequireFromString("-3.6378803"),
	}
}

func TestQuoteRepo(t *testing.T) {
	db := withPostgres(t)
	repo := pg.NewQuoteRepo(db)
	ctx := context.Background()

	t.Run("latest not found", func(t *testing.T) {
		_, err := repo.GetLatest(ctx, domain.Ethereum)
		require.ErrorIs(t, err, application.ErrNotFound)
		prices, err := repo.ListRecentPrices(ctx, domain.Ethereum, 100)
		require.NoError(t, err)
		require.Empty(t, prices)
	})

	t.Run("create and latest", func(t *testing.T) {
		first, err := repo.Create(ctx, newQuote(domain.Bitcoin, "67000.01"))
		require.NoError(t, err)
		require.False(t, first.CreatedAt.IsZero())
		second, err := repo.Create(ctx, newQuote(domain.Bitcoin, "67187.33"))
		require.NoError(t, err)
		require.False(t, second.CreatedAt.Before(first.CreatedAt))

		got, err := repo.GetLatest(ctx, domain.Bitcoin)
		require.NoError(t, err)
		require.Equal(t, domain.Bitcoin, got.Coin)
		require.Equal(t, "67187.33", got.PriceUSD.String())
		require.Equal(t, "1327479877967.8", got.MarketCapUSD.String())
		require.Equal(t, "-3.6378803", got.Change24hPercent.String())
	})

	t.Run("recent is capped and newest first", func(t *testing.T) {
		for i := 1; i <= 120; i++ {
			_, err := repo.Create(ctx, newQuote(domain.MaticNetwork, fmt.Sprint(i)))
			require.NoError(t, err)
		}
		prices, err := repo.ListRecentPrices(ctx, domain.MaticNetwork, 100)
		require.NoError(t, err)
		require.Len(t, prices, 100)
		require.Equal(t, "120", prices[0].Price.String())
		require.Equal(t, "21", prices[99].Price.String())
	})

	t.Run("non-positive limit", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			prices, err := repo.ListRecentPrices(ctx, domain.MaticNetwork, limit)
			require.NoError(t, err)
			require.Empty(t, prices)
		}
	})
}

func TestQuoteRepo_ListRecentPrices_NonPositiveLimitSkipsQuery(t *testing.T) {
	// No pool: a query attempt would panic.
	repo := pg.NewQuoteRepo(&pg.DB{})
	for _, limit := range []int{0, -1} {
		prices, err := repo.ListRecentPrices(context.Background(), domain.Bitcoin, limit)
		require.NoError(t, err)
		require.Empty(t, prices)
	}
}
