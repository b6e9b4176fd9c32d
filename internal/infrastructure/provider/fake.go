package provider

import (
	"context"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Ensure Fake implements application.PriceProvider.
var _ application.PriceProvider = (*Fake)(nil)

// Fake reports the same complete reading for every requested coin.
type Fake struct {
	price decimal.Decimal
}

func NewFake(price float64) *Fake { return &Fake{price: decimal.NewFromFloat(price)} }

func (f *Fake) SimplePrices(_ context.Context, coins []domain.Coin) (map[domain.Coin]domain.Reading, error) {
	out := make(map[domain.Coin]domain.Reading, len(coins))
	for _, c := range coins {
		out[c] = domain.Reading{
			PriceUSD:         decimal.NewNullDecimal(f.price),
			MarketCapUSD:     decimal.NewNullDecimal(f.price.Mul(decimal.NewFromInt(1_000_000))),
			Change24hPercent: decimal.NewNullDecimal(decimal.Zero),
		}
	}
	return out, nil
}
