package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-storyteller/internal/config"
	"github.com/KirkDiggler/rpg-storyteller/internal/content"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/adventure"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/orchestrators/shop"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-storyteller/internal/redis"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily"
	investigatorrepo "github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/sqlite"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
)

// services is everything a front end talks to
type services struct {
	adventure    adventure.Service
	investigator investigator.Service
	shop         shop.Service
	closers      []func() error
}

// Close releases the store connections
func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

type repositories struct {
	investigator investigatorrepo.Repository
	wallet       wallet.Repository
	daily        daily.Repository
}

// buildServices opens the configured store, loads the catalog and wires the
// orchestrators
func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	svc := &services{}
	clk := clock.New()

	repos, err := openStore(ctx, cfg, clk, svc)
	if err != nil {
		svc.Close()
		return nil, err
	}

	catalog, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to load content")
	}

	roller := dice.NewRoller(nil)

	bus := events.NewBus()
	adventure.SubscribeLogger(bus)

	svc.adventure, err = adventure.NewOrchestrator(&adventure.Config{
		InvestigatorRepo: repos.investigator,
		WalletRepo:       repos.wallet,
		Catalog:          catalog,
		Roller:           roller,
		EventBus:         bus,
		IDGenerator:      idgen.NewUUID("adv"),
		Clock:            clk,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create adventure orchestrator")
	}

	svc.investigator, err = investigator.NewOrchestrator(&investigator.Config{
		Repository: repos.investigator,
		Catalog:    catalog,
		Roller:     roller,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create investigator orchestrator")
	}

	svc.shop, err = shop.NewOrchestrator(&shop.Config{
		DailyRepo:        repos.daily,
		WalletRepo:       repos.wallet,
		InvestigatorRepo: repos.investigator,
		Catalog:          catalog,
		Roller:           roller,
		Clock:            clk,
	})
	if err != nil {
		svc.Close()
		return nil, errors.Wrap(err, "failed to create shop orchestrator")
	}

	return svc, nil
}

func openStore(ctx context.Context, cfg *config.Config, clk clock.Clock, svc *services) (*repositories, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.Connect(ctx, cfg.RedisAddr, &redisclient.Options{
			PoolSize: cfg.RedisPoolSize,
			UseTLS:   cfg.RedisTLS,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}
		svc.closers = append(svc.closers, client.Close)
		slog.Info("Connected to redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)

		invRepo, err := investigatorrepo.NewRedis(&investigatorrepo.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			return nil, err
		}
		walletRepo, err := wallet.NewRedis(&wallet.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		dailyRepo, err := daily.NewRedis(&daily.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		return &repositories{investigator: invRepo, wallet: walletRepo, daily: dailyRepo}, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, &sqlite.Config{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, store.Close)
		slog.Info("Opened sqlite store", "path", cfg.SQLitePath)
		return &repositories{investigator: store, wallet: store, daily: store}, nil

	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}
