//go:build wireinject

package bootstrap

import (
	"context"

	"cryptostats-service/internal/application"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideLogger,
	ProvideConfig,
	ProvideCoins,
	ProvideStorage,
	ProvideQuoteRepo,
	ProvidePriceProvider,
	ProvideImporter,
	ProvideScheduler,
)

// InitAPI builds the HTTP process (server + optional scheduler) and its cleanup.
func InitAPI(ctx context.Context) (*API, func(), error) {
	wire.Build(
		infraSet,
		ProvideStatsService,
		ProvideServer,
		ProvideAPI,
	)
	return nil, nil, nil
}

// InitWorker builds the standalone scheduler and its cleanup.
func InitWorker(ctx context.Context) (application.Worker, func(), error) {
	wire.Build(
		infraSet,
		ProvideWorker,
	)
	return nil, nil, nil
}
