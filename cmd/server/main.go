package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ether-notes/internal/cache"
	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/handler"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/metrics"
	"github.com/MKhiriev/ether-notes/internal/server"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/workers"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("ether-notes-gateway")
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storages, err := store.NewGatewayStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	backend, err := chain.Dial(ctx, cfg.Chain.RPCURL, cfg.Chain.RequestsPerSecond)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to chain")
	}

	notesClient, err := chain.NewNotesClient(cfg.Chain, backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notes client")
	}

	names, nameCache := newNameResolver(ctx, cfg, log)
	defer nameCache.Close()

	services, err := service.NewServices(notesClient, names, storages.Notes, cfg.App, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	for _, author := range cfg.Workers.TrackedAuthors {
		if err = services.GatewayService.Track(ctx, common.HexToAddress(author)); err != nil {
			log.Err(err).Str("author", author).Msg("error tracking author")
		}
	}

	m := metrics.NewMetrics("gateway")

	background := workers.NewWorkers(
		workers.NewIndexRefresher(services.GatewayService, m, storages.Stats, cfg.Workers.RefreshInterval, log),
	)
	background.Start(ctx)
	defer background.Stop()

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

// newNameResolver looks ENS names up on the configured mainnet node and
// caches them in Redis when it is configured. The returned closer releases
// the Redis client and is safe to call when no cache was opened.
func newNameResolver(ctx context.Context, cfg *config.GatewayConfig, log *logger.Logger) (chain.NameResolver, io.Closer) {
	if cfg.Chain.ENSRPCURL == "" {
		return chain.NoopResolver(), nopCloser{}
	}

	ensBackend, err := chain.Dial(ctx, cfg.Chain.ENSRPCURL, cfg.Chain.RequestsPerSecond)
	if err != nil {
		log.Err(err).Msg("ENS disabled: cannot connect")
		return chain.NoopResolver(), nopCloser{}
	}
	resolver, err := chain.NewENSResolver(ensBackend)
	if err != nil {
		log.Err(err).Msg("ENS disabled")
		return chain.NoopResolver(), nopCloser{}
	}

	return withNameCache(ctx, resolver, cfg.Storage.Redis, log)
}

// withNameCache puts a Redis cache in front of resolver when an address is
// configured.
func withNameCache(ctx context.Context, resolver chain.NameResolver, cfg config.Redis, log *logger.Logger) (chain.NameResolver, io.Closer) {
	if cfg.Address == "" {
		return resolver, nopCloser{}
	}
	nameCache, err := cache.NewRedisNameCache(ctx, cfg)
	if err != nil {
		log.Err(err).Msg("name cache disabled")
		return resolver, nopCloser{}
	}
	return cache.CachedResolver(resolver, nameCache, log), nameCache
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
