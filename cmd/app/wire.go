//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/alyoshka-app/alyoshka/internal/bootstrap"
	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
	"github.com/alyoshka-app/alyoshka/internal/domain/feed"
	"github.com/alyoshka-app/alyoshka/internal/domain/journal"
	"github.com/alyoshka-app/alyoshka/internal/infra/config"
	"github.com/alyoshka-app/alyoshka/internal/infra/fixtures"
	httpiface "github.com/alyoshka-app/alyoshka/internal/interface/http"
	"github.com/alyoshka-app/alyoshka/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFixtureStore,
		provideAlmanacConfig,
		provideRemoteClient,
		provideMonthCache,
		provideClubRepository,
		provideImageStore,
		provideFeedConfig,
		almanac.NewService,
		clubs.NewService,
		feed.NewService,
		journal.NewService,
		wire.Bind(new(almanac.FixtureStore), new(*fixtures.Store)),
		wire.Bind(new(feed.Source), new(*fixtures.Store)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
