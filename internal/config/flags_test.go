package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "https://quests.example.com/api",
				"-d", "/tmp/quests.db",
				"-secrets", "/tmp/session.sealed",
				"-secret-key", "passphrase",
				"-page-limit", "50",
				"-c", "/etc/quest/config.json",
				"-request-timeout", "5s",
				"-refresh-interval", "60s",
				"-notification-interval", "6h",
			},
			expected: &StructuredConfig{
				App: App{SecretKey: "passphrase", PageLimit: 50},
				Storage: Storage{
					DB:      DB{DSN: "/tmp/quests.db"},
					Secrets: Secrets{Path: "/tmp/session.sealed"},
				},
				Adapter: Adapter{HTTPAddress: "https://quests.example.com/api", RequestTimeout: 5 * time.Second},
				Workers: Workers{RefreshInterval: time.Minute, NotificationInterval: 6 * time.Hour},
				JSONFilePath: "/etc/quest/config.json",
			},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "cfg.json"},
			expected: &StructuredConfig{JSONFilePath: "cfg.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	cfg, err := parseFlags([]string{"-refresh-interval", "soon"})
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-hash-key", "x"})
	require.Error(t, err)
}
