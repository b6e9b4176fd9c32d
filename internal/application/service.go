package application

import (
	"context"
	"errors"
	"fmt"

	"cryptostats-service/internal/domain"
)

type StatsService struct {
	quoteRepo QuoteRepo
	coins     domain.CoinSet
	window    int
}

type Option func(*StatsService)

// WithWindow overrides the deviation sample size.
func WithWindow(n int) Option { return func(s *StatsService) { s.window = n } }

func NewStatsService(quoteRepo QuoteRepo, coins domain.CoinSet, opts ...Option) *StatsService {
	s := &StatsService{
		quoteRepo: quoteRepo,
		coins:     coins,
		window:    domain.DeviationWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.window <= 0 {
		s.window = domain.DeviationWindow
	}
	return s
}

func (s *StatsService) parseCoin(raw string) (domain.Coin, error) {
	c, err := s.coins.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return c, nil
}

// GetLatestStats returns the most recently stored quote for coin.
func (s *StatsService) GetLatestStats(ctx context.Context, coin string) (domain.Quote, error) {
	c, err := s.parseCoin(coin)
	if err != nil {
		return domain.Quote{}, err
	}
	q, err := s.quoteRepo.GetLatest(ctx, c)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Quote{}, err
		}
		return domain.Quote{}, fmt.Errorf("get latest %s: %w", c, err)
	}
	return q, nil
}

// GetDeviation returns the population standard deviation of the most recent prices.
func (s *StatsService) GetDeviation(ctx context.Context, coin string) (float64, error) {
	c, err := s.parseCoin(coin)
	if err != nil {
		return 0, err
	}
	points, err := s.quoteRepo.ListRecentPrices(ctx, c, s.window)
	if err != nil {
		return 0, fmt.Errorf("list prices %s: %w", c, err)
	}
	if len(points) == 0 {
		return 0, ErrInsufficientData
	}
	if len(points) > s.window {
		points = points[:s.window]
	}
	prices := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price.InexactFloat64()
	}
	return domain.StandardDeviation(prices), nil
}
