// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const maxPageLimit = 100

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: database file is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Secrets.Path == "" {
		return fmt.Errorf("%w: secrets path is required", ErrInvalidStorageConfigs)
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.NotificationInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.PageLimit < 1 || cfg.App.PageLimit > maxPageLimit {
		return fmt.Errorf("%w: page limit must be within 1..%d", ErrInvalidAppConfigs, maxPageLimit)
	}

	return nil
}
