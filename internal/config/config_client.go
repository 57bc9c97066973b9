package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SecretKey seals the session written by the secret store.
	SecretKey string
	// PageLimit is the page size sent with every paginated request.
	PageLimit int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the quest API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client cache.
	DSN string
}

// ClientSecrets contains the secret store settings.
type ClientSecrets struct {
	// Path is the sealed session file.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB      ClientDB
	Secrets ClientSecrets
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the visible screen is refreshed.
	RefreshInterval time.Duration
	// NotificationInterval defines how often the reminder is fetched.
	NotificationInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SecretKey: cfg.App.SecretKey,
			PageLimit: cfg.App.PageLimit,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Secrets: ClientSecrets{Path: cfg.Storage.Secrets.Path},
		},
		Workers: ClientWorkers{
			RefreshInterval:      cfg.Workers.RefreshInterval,
			NotificationInterval: cfg.Workers.NotificationInterval,
		},
	}
}
