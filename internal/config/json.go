package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version   string `json:"version"`
		LogFile   string `json:"log_file"`
		ExportDir string `json:"export_dir"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCURL            string   `json:"rpc_url"`
		ChainID           int64    `json:"chain_id"`
		NotesAddress      string   `json:"notes_address"`
		NFTAddress        string   `json:"nft_address"`
		ENSRPCURL         string   `json:"ens_rpc_url"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		ReceiptTimeout    Duration `json:"receipt_timeout"`
	} `json:"chain,omitempty"`

	Wallet struct {
		Mode           string   `json:"mode"`
		KeystorePath   string   `json:"keystore_path"`
		RPCURL         string   `json:"rpc_url"`
		Account        string   `json:"account"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"wallet,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			NameTTL  Duration `json:"name_ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval     Duration `json:"refresh_interval"`
		ReceiptPollInterval Duration `json:"receipt_poll_interval"`
		TrackedAuthors      []string `json:"tracked_authors"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the file at jsonFilePath. The wallet passphrase is never
// read from JSON.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:   jsonCfg.App.Version,
			LogFile:   jsonCfg.App.LogFile,
			ExportDir: jsonCfg.App.ExportDir,
		},
		Chain: Chain{
			RPCURL:            jsonCfg.Chain.RPCURL,
			ChainID:           jsonCfg.Chain.ChainID,
			NotesAddress:      jsonCfg.Chain.NotesAddress,
			NFTAddress:        jsonCfg.Chain.NFTAddress,
			ENSRPCURL:         jsonCfg.Chain.ENSRPCURL,
			RequestsPerSecond: jsonCfg.Chain.RequestsPerSecond,
			ReceiptTimeout:    time.Duration(jsonCfg.Chain.ReceiptTimeout),
		},
		Wallet: Wallet{
			Mode:           jsonCfg.Wallet.Mode,
			KeystorePath:   jsonCfg.Wallet.KeystorePath,
			RPCURL:         jsonCfg.Wallet.RPCURL,
			Account:        jsonCfg.Wallet.Account,
			RequestTimeout: time.Duration(jsonCfg.Wallet.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				NameTTL:  time.Duration(jsonCfg.Storage.Redis.NameTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval:     time.Duration(jsonCfg.Workers.RefreshInterval),
			ReceiptPollInterval: time.Duration(jsonCfg.Workers.ReceiptPollInterval),
			TrackedAuthors:      jsonCfg.Workers.TrackedAuthors,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
