package pg

import (
	"context"
	"errors"
	"fmt"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/domain"
	"cryptostats-service/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ application.QuoteRepo = (*QuoteRepo)(nil)

type QuoteRepo struct{ db *DB }

func NewQuoteRepo(db *DB) *QuoteRepo { return &QuoteRepo{db: db} }

func (r *QuoteRepo) Create(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	const ins = `
        INSERT INTO quotes(coin, price_usd, market_cap_usd, change_24h_percent)
        VALUES ($1, $2::numeric, $3::numeric, $4::numeric)
        RETURNING created_at`
	log := logx.WithFields(ctx).With(
		zap.String("repo", "quote"),
		zap.String("operation", "Create"),
		zap.String("coin", string(q.Coin)),
	)
	err := r.db.Pool.QueryRow(ctx, ins,
		string(q.Coin), q.PriceUSD.String(), q.MarketCapUSD.String(), q.Change24hPercent.String(),
	).Scan(&q.CreatedAt)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return domain.Quote{}, err
	}
	log.Debug("sql.exec_success")
	return q, nil
}

func (r *QuoteRepo) GetLatest(ctx context.Context, coin domain.Coin) (domain.Quote, error) {
	const q = `
        SELECT coin, price_usd::text, market_cap_usd::text, change_24h_percent::text, created_at
        FROM quotes
        WHERE coin = $1
        ORDER BY created_at DESC, id DESC
        LIMIT 1`
	var (
		out                      domain.Quote
		coinID, price, mcap, chg string
	)
	err := r.db.Pool.QueryRow(ctx, q, string(coin)).Scan(&coinID, &price, &mcap, &chg, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quote{}, application.ErrNotFound
	}
	if err != nil {
		logx.WithFields(ctx).Error("sql.query_failed",
			zap.String("repo", "quote"), zap.String("operation", "GetLatest"), zap.Error(err))
		return domain.Quote{}, err
	}
	out.Coin = domain.Coin(coinID)
	if out.PriceUSD, err = decimal.NewFromString(price); err != nil {
		return domain.Quote{}, fmt.Errorf("scan price: %w", err)
	}
	if out.MarketCapUSD, err = decimal.NewFromString(mcap); err != nil {
		return domain.Quote{}, fmt.Errorf("scan market cap: %w", err)
	}
	if out.Change24hPercent, err = decimal.NewFromString(chg); err != nil {
		return domain.Quote{}, fmt.Errorf("scan change: %w", err)
	}
	return out, nil
}

func (r *QuoteRepo) ListRecentPrices(ctx context.Context, coin domain.Coin, limit int) ([]domain.PricePoint, error) {
	const q = `
        SELECT price_usd::text, created_at
        FROM quotes
        WHERE coin = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2`
	if limit <= 0 {
		return []domain.PricePoint{}, nil
	}
	rows, err := r.db.Pool.Query(ctx, q, string(coin), limit)
	if err != nil {
		logx.WithFields(ctx).Error("sql.query_failed",
			zap.String("repo", "quote"), zap.String("operation", "ListRecentPrices"), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.PricePoint, 0, limit)
	for rows.Next() {
		var (
			p     domain.PricePoint
			price string
		)
		if err := rows.Scan(&price, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
