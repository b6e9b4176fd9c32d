package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is one immutable market reading for a single coin.
type Quote struct {
	Coin             Coin
	PriceUSD         decimal.Decimal
	MarketCapUSD     decimal.Decimal
	Change24hPercent decimal.Decimal
	CreatedAt        time.Time
}

func (q Quote) Validate() error {
	switch {
	case q.Coin == "":
		return fmt.Errorf("%w: empty coin", ErrInvalidQuote)
	case !q.PriceUSD.IsPositive():
		return fmt.Errorf("%w: price %s is not positive", ErrInvalidQuote, q.PriceUSD)
	case q.MarketCapUSD.IsNegative():
		return fmt.Errorf("%w: market cap %s is negative", ErrInvalidQuote, q.MarketCapUSD)
	}
	return nil
}

// PricePoint is the price projection of a stored quote.
type PricePoint struct {
	Price     decimal.Decimal
	CreatedAt time.Time
}

// Reading is what the upstream API reported for one coin. Any field may be absent.
type Reading struct {
	PriceUSD         decimal.NullDecimal
	MarketCapUSD     decimal.NullDecimal
	Change24hPercent decimal.NullDecimal
}

func (r Reading) Complete() bool {
	return r.PriceUSD.Valid && r.MarketCapUSD.Valid && r.Change24hPercent.Valid
}

// Quote converts a complete reading into an unsaved quote.
func (r Reading) Quote(c Coin) (Quote, bool) {
	if !r.Complete() {
		return Quote{}, false
	}
	return Quote{
		Coin:             c,
		PriceUSD:         r.PriceUSD.Decimal,
		MarketCapUSD:     r.MarketCapUSD.Decimal,
		Change24hPercent: r.Change24hPercent.Decimal,
	}, true
}
