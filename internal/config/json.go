// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		SessionTTL   Duration `json:"session_ttl"`
		TokenSignKey string   `json:"token_sign_key"`
		TokenIssuer  string   `json:"token_issuer"`
		BcryptCost   int      `json:"bcrypt_cost"`
		LogFile      string   `json:"log_file"`
		Version      string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Environment    string   `json:"environment"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ClientName     string   `json:"client_name"`
		CountryCodes   []string `json:"country_codes"`
		Language       string   `json:"language"`
	} `json:"adapter,omitempty"`

	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
	} `json:"crypto,omitempty"`

	Sync struct {
		PageSize          int      `json:"page_size"`
		MaxRestarts       int      `json:"max_restarts"`
		ReadyPollInterval Duration `json:"ready_poll_interval"`
		ReadyTimeout      Duration `json:"ready_timeout"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

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
			SessionTTL:   time.Duration(jsonCfg.App.SessionTTL),
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			BcryptCost:   jsonCfg.App.BcryptCost,
			LogFile:      jsonCfg.App.LogFile,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Environment:    jsonCfg.Adapter.Environment,
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ClientName:     jsonCfg.Adapter.ClientName,
			CountryCodes:   jsonCfg.Adapter.CountryCodes,
			Language:       jsonCfg.Adapter.Language,
		},
		Crypto: Crypto{
			KDFIterations: jsonCfg.Crypto.KDFIterations,
		},
		Sync: Sync{
			PageSize:          jsonCfg.Sync.PageSize,
			MaxRestarts:       jsonCfg.Sync.MaxRestarts,
			ReadyPollInterval: time.Duration(jsonCfg.Sync.ReadyPollInterval),
			ReadyTimeout:      time.Duration(jsonCfg.Sync.ReadyTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
