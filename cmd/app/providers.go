package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
	"github.com/alyoshka-app/alyoshka/internal/domain/feed"
	"github.com/alyoshka-app/alyoshka/internal/infra/clubrepo"
	"github.com/alyoshka-app/alyoshka/internal/infra/config"
	"github.com/alyoshka-app/alyoshka/internal/infra/fixtures"
	"github.com/alyoshka-app/alyoshka/internal/infra/imagestore"
	"github.com/alyoshka-app/alyoshka/internal/infra/monthcache"
	"github.com/alyoshka-app/alyoshka/internal/infra/remote"
)

func provideFixtureStore(cfg *config.Config, logger *slog.Logger) *fixtures.Store {
	return fixtures.NewStore(cfg.Fixtures.Dir, logger)
}

func provideAlmanacConfig(cfg *config.Config) almanac.Config {
	return almanac.Config{
		DefaultRegion: cfg.Calendar.DefaultRegion,
		WarmAdjacent:  cfg.Calendar.WarmAdjacent,
	}
}

func provideRemoteClient(cfg *config.Config, logger *slog.Logger) almanac.RemoteClient {
	if !cfg.Remote.Enabled {
		logger.Info("remote content source disabled, resolving from fixtures only")
		return nil
	}
	return remote.NewClient(cfg.Remote.BaseURL)
}

func provideMonthCache(cfg *config.Config, logger *slog.Logger) almanac.MonthCache {
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return monthcache.NewMemoryStore(cfg.Cache.TTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return monthcache.NewMemoryStore(cfg.Cache.TTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey month cache enabled", "addr", cfg.Cache.Valkey.Addr)
			return monthcache.NewValkeyStore(client, "almanac", cfg.Cache.TTL)
		}
	}
	return monthcache.NewMemoryStore(cfg.Cache.TTL)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideClubRepository(cfg *config.Config, logger *slog.Logger) clubs.Repository {
	fallback := clubrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Clubs.Postgres.DSN)
	if dsn == "" {
		logger.Info("clubs postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Clubs.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Clubs.Postgres.MaxConns
	}
	if cfg.Clubs.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Clubs.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("clubs postgres repository enabled")
	return clubrepo.NewPostgresRepository(pool)
}

func provideImageStore(cfg *config.Config, logger *slog.Logger) clubs.ImageStore {
	if strings.TrimSpace(cfg.Media.Endpoint) == "" {
		logger.Info("media endpoint not set, storing images in memory")
		return imagestore.NewMemoryStore()
	}
	store, err := imagestore.NewR2Store(cfg.Media.Endpoint, cfg.Media.AccessKey, cfg.Media.SecretKey, cfg.Media.Bucket, cfg.Media.Region, logger)
	if err != nil {
		logger.Error("failed to initialize r2 storage, storing images in memory", "error", err)
		return imagestore.NewMemoryStore()
	}
	logger.Info("r2 image storage enabled", "bucket", cfg.Media.Bucket)
	return store
}

func provideFeedConfig(cfg *config.Config) feed.Config {
	return feed.Config{Whitelist: cfg.Feed.Whitelist}
}
