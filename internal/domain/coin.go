package domain

import "strings"

type Coin string

const (
	Bitcoin      Coin = "bitcoin"
	MaticNetwork Coin = "matic-network"
	Ethereum     Coin = "ethereum"
)

// CoinSet is an immutable, ordered set of supported coin ids.
// The zero value contains no coins.
type CoinSet struct {
	coins []Coin
	index map[Coin]struct{}
}

func NewCoinSet(coins ...Coin) CoinSet {
	s := CoinSet{index: make(map[Coin]struct{}, len(coins))}
	for _, c := range coins {
		if _, dup := s.index[c]; dup || c == "" {
			continue
		}
		s.index[c] = struct{}{}
		s.coins = append(s.coins, c)
	}
	return s
}

// DefaultCoins returns the coins tracked by the service.
func DefaultCoins() CoinSet {
	return NewCoinSet(Bitcoin, MaticNetwork, Ethereum)
}

func (s CoinSet) Contains(c Coin) bool {
	_, ok := s.index[c]
	return ok
}

// Parse validates a client supplied coin id against the set. Matching is exact.
func (s CoinSet) Parse(raw string) (Coin, error) {
	c := Coin(raw)
	if c == "" || !s.Contains(c) {
		return "", ErrUnsupportedCoin
	}
	return c, nil
}

// IDs returns a copy of the coins in declaration order.
func (s CoinSet) IDs() []Coin {
	out := make([]Coin, len(s.coins))
	copy(out, s.coins)
	return out
}

// Join renders the set the way upstream list parameters expect it.
func (s CoinSet) Join(sep string) string {
	parts := make([]string, len(s.coins))
	for i, c := range s.coins {
		parts[i] = string(c)
	}
	return strings.Join(parts, sep)
}
