package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/ether-notes/internal/chain"
	"github.com/MKhiriev/ether-notes/internal/client"
	"github.com/MKhiriev/ether-notes/internal/config"
	"github.com/MKhiriev/ether-notes/internal/crypto"
	"github.com/MKhiriev/ether-notes/internal/logger"
	"github.com/MKhiriev/ether-notes/internal/service"
	"github.com/MKhiriev/ether-notes/internal/store"
	"github.com/MKhiriev/ether-notes/internal/tui"
	"github.com/MKhiriev/ether-notes/internal/wallet"
	"github.com/MKhiriev/ether-notes/models"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/term"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("ether-notes-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	backend, err := chain.Dial(ctx, cfg.Chain.RPCURL, cfg.Chain.RequestsPerSecond)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to chain")
	}

	notesClient, err := chain.NewNotesClient(cfg.Chain, backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notes client")
	}

	storages, err := store.NewClientStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	provider, err := openWallet(cfg.Wallet, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening wallet")
	}

	session, err := wallet.Connect(ctx, provider, common.HexToAddress(cfg.Wallet.Account))
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting wallet")
	}
	log.Info().Str("account", session.Account.Hex()).Msg("wallet connected")

	services := service.NewClientServices(notesClient, newNameResolver(ctx, cfg.Chain, log), storages, log)

	ui := tui.New(services.NotesService, session, build, cfg.App.ExportDir, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func openWallet(cfg config.Wallet, log *logger.Logger) (wallet.Provider, error) {
	if cfg.Mode == config.WalletModeRPC {
		return wallet.NewRPCProvider(cfg, log), nil
	}

	passphrase := cfg.Passphrase
	if passphrase == "" {
		var err error
		if passphrase, err = promptPassphrase(cfg.KeystorePath); err != nil {
			return nil, err
		}
	}

	provider, err := wallet.OpenLocalProvider(crypto.NewKeyChainService(), cfg.KeystorePath, passphrase, wallet.AutoApprove)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func promptPassphrase(path string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no passphrase for %s and stdin is not a terminal", path)
	}

	fmt.Printf("Passphrase for %s: ", path)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimSpace(string(pass)), nil
}

func newNameResolver(ctx context.Context, cfg config.Chain, log *logger.Logger) chain.NameResolver {
	if cfg.ENSRPCURL == "" {
		return chain.NoopResolver()
	}

	ensBackend, err := chain.Dial(ctx, cfg.ENSRPCURL, cfg.RequestsPerSecond)
	if err != nil {
		log.Err(err).Msg("ENS disabled: cannot connect")
		return chain.NoopResolver()
	}
	resolver, err := chain.NewENSResolver(ensBackend)
	if err != nil {
		log.Err(err).Msg("ENS disabled")
		return chain.NoopResolver()
	}
	return resolver
}
