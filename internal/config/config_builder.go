package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

const (
	defaultPageLimit            = 20
	defaultRequestTimeout       = 10 * time.Second
	defaultRefreshInterval      = 90 * time.Second
	defaultNotificationInterval = 24 * time.Hour
	defaultDSN                  = "quests.db?_journal_mode=WAL&_busy_timeout=5000"
	defaultSecretsPath          = "session.sealed"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	args []string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// build merges the collected configs. Earlier configs take precedence:
// mergo only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{PageLimit: defaultPageLimit},
		Storage: Storage{
			DB:      DB{DSN: defaultDSN},
			Secrets: Secrets{Path: defaultSecretsPath},
		},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Workers: Workers{
			RefreshInterval:      defaultRefreshInterval,
			NotificationInterval: defaultNotificationInterval,
		},
	})
	return b
}
