package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"
	"cryptostats-service/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
)

const (
	coinGeckoSimplePricePath = "/api/v3/simple/price"
	coinGeckoDemoKeyHeader   = "x-cg-demo-api-key"
	vsCurrencyUSD            = "usd"
)

type CoinGeckoProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.PriceProvider = (*CoinGeckoProvider)(nil)

type cgSimplePrice struct {
	USD          decimal.NullDecimal `json:"usd"`
	USDMarketCap decimal.NullDecimal `json:"usd_market_cap"`
	USD24hChange decimal.NullDecimal `json:"usd_24h_change"`
}

func (p *CoinGeckoProvider) SimplePrices(ctx context.Context, coins []domain.Coin) (map[domain.Coin]domain.Reading, error) {
	if p.BaseURL == "" {
		return nil, errors.New("coingecko: missing configuration")
	}
	if len(coins) == 0 {
		return map[domain.Coin]domain.Reading{}, nil
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("coingecko: invalid base url: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + coinGeckoSimplePricePath
	ids := make([]string, len(coins))
	for i, c := range coins {
		ids[i] = string(c)
	}
	q := u.Query()
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", vsCurrencyUSD)
	q.Set("include_market_cap", "true")
	q.Set("include_24hr_change", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko: create request: %w", err)
	}
	if p.APIKey != "" {
		req.Header.Set(coinGeckoDemoKeyHeader, p.APIKey)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body map[string]cgSimplePrice
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return nil, fmt.Errorf("coingecko: simple price: %w", err)
	}

	out := make(map[domain.Coin]domain.Reading, len(body))
	for _, c := range coins {
		v, ok := body[string(c)]
		if !ok {
			continue
		}
		out[c] = domain.Reading{
			PriceUSD:         v.USD,
			MarketCapUSD:     v.USDMarketCap,
			Change24hPercent: v.USD24hChange,
		}
	}
	return out, nil
}
