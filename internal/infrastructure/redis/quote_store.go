package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

var _ application.QuoteRepo = (*QuoteStore)(nil)

// QuoteStore keeps one sorted set per coin. Members are JSON rows scored by
// their creation time in microseconds, so ZREVRANGE yields newest first.
type QuoteStore struct {
	Client *redis.Client
	Prefix string

	now func() time.Time
}

func New(client *redis.Client, prefix string) *QuoteStore {
	return &QuoteStore{Client: client, Prefix: prefix, now: func() time.Time { return time.Now().UTC() }}
}

type quoteRow struct {
	ID               string          `json:"id"`
	Coin             domain.Coin     `json:"coin"`
	PriceUSD         decimal.Decimal `json:"usd"`
	MarketCapUSD     decimal.Decimal `json:"usd_market_cap"`
	Change24hPercent decimal.Decimal `json:"usd_24h_change"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (s *QuoteStore) key(coin domain.Coin) string {
	return s.Prefix + "quotes:" + string(coin)
}

func (s *QuoteStore) Create(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	q.CreatedAt = s.now()
	row := quoteRow{
		ID:               uuid.NewString(),
		Coin:             q.Coin,
		PriceUSD:         q.PriceUSD,
		MarketCapUSD:     q.MarketCapUSD,
		Change24hPercent: q.Change24hPercent,
		CreatedAt:        q.CreatedAt,
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("encode quote: %w", err)
	}
	z := redis.Z{Score: float64(q.CreatedAt.UnixMicro()), Member: payload}
	if err := s.Client.ZAdd(ctx, s.key(q.Coin), z).Err(); err != nil {
		return domain.Quote{}, err
	}
	return q, nil
}

func (s *QuoteStore) GetLatest(ctx context.Context, coin domain.Coin) (domain.Quote, error) {
	rows, err := s.recent(ctx, coin, 1)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(rows) == 0 {
		return domain.Quote{}, application.ErrNotFound
	}
	r := rows[0]
	return domain.Quote{
		Coin:             r.Coin,
		PriceUSD:         r.PriceUSD,
		MarketCapUSD:     r.MarketCapUSD,
		Change24hPercent: r.Change24hPercent,
		CreatedAt:        r.CreatedAt,
	}, nil
}

func (s *QuoteStore) ListRecentPrices(ctx context.Context, coin domain.Coin, limit int) ([]domain.PricePoint, error) {
	rows, err := s.recent(ctx, coin, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PricePoint, len(rows))
	for i, r := range rows {
		out[i] = domain.PricePoint{Price: r.PriceUSD, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

func (s *QuoteStore) recent(ctx context.Context, coin domain.Coin, limit int) ([]quoteRow, error) {
	if limit <= 0 {
		return nil, nil
	}
	members, err := s.Client.ZRevRange(ctx, s.key(coin), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]quoteRow, 0, len(members))
	for _, m := range members {
		var r quoteRow
		if err := json.Unmarshal([]byte(m), &r); err != nil {
			return nil, fmt.Errorf("decode quote: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *QuoteStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
