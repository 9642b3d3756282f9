package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a gateway address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-rpc chain JSON-RPC URL
//	-chain-id chain id used for signing
//	-notes notes contract address
//	-nft NFT contract address
//	-ens-rpc mainnet RPC URL for ENS reverse lookups
//	-wallet wallet mode (local|rpc)
//	-keystore key file path (local mode)
//	-wallet-rpc external wallet URL (rpc mode)
//	-account account to use
//	-redis redis address
//	-log-file client log file
//	-export-dir markdown export directory
//	-request-timeout gateway request timeout (e.g., "30s", "1m")
//	-refresh-interval gateway refresh interval
//	-track comma separated authors to index
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var rpcURL, notesAddress, nftAddress, ensRPCURL string
	var chainID int64
	var walletMode, keystorePath, walletRPCURL, account string
	var redisAddress string
	var logFile, exportDir string
	var requestTimeout, refreshInterval time.Duration
	var tracked string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&rpcURL, "rpc", "", "Chain JSON-RPC URL")
	fs.Int64Var(&chainID, "chain-id", 0, "Chain id")
	fs.StringVar(&notesAddress, "notes", "", "Notes contract address")
	fs.StringVar(&nftAddress, "nft", "", "NFT contract address")
	fs.StringVar(&ensRPCURL, "ens-rpc", "", "Mainnet RPC URL for ENS")
	fs.StringVar(&walletMode, "wallet", "", "Wallet mode: local or rpc")
	fs.StringVar(&keystorePath, "keystore", "", "Key file path")
	fs.StringVar(&walletRPCURL, "wallet-rpc", "", "External wallet URL")
	fs.StringVar(&account, "account", "", "Account address")
	fs.StringVar(&redisAddress, "redis", "", "Redis address")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&exportDir, "export-dir", "", "Markdown export directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Gateway refresh interval")
	fs.StringVar(&tracked, "track", "", "Comma separated authors to index")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			LogFile:   logFile,
			ExportDir: exportDir,
		},
		Chain: Chain{
			RPCURL:       rpcURL,
			ChainID:      chainID,
			NotesAddress: notesAddress,
			NFTAddress:   nftAddress,
			ENSRPCURL:    ensRPCURL,
		},
		Wallet: Wallet{
			Mode:         walletMode,
			KeystorePath: keystorePath,
			RPCURL:       walletRPCURL,
			Account:      account,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			TrackedAuthors:  splitList(tracked),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
