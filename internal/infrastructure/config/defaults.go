package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultFetchInterval   = 2 * time.Hour
	DefaultFetchTimeout    = time.Minute
	DefaultRequestTimeout  = 5 * time.Second
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
	DefaultRedisKeyPrefix  = "cryptostats:"
	DefaultCoinGeckoBase   = "https://api.coingecko.com"
)
