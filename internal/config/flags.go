package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a quest API base URL
//	-d cache database DSN
//	-secrets sealed session file path
//	-secret-key passphrase for the session file
//	-page-limit page size
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "10s")
//	-refresh-interval background refresh period (e.g., "90s")
//	-notification-interval reminder period (e.g., "24h")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quest-client", flag.ContinueOnError)

	var (
		serverAddress        string
		databaseDSN          string
		secretsPath          string
		secretKey            string
		pageLimit            int
		jsonConfigPath       string
		requestTimeout       time.Duration
		refreshInterval      time.Duration
		notificationInterval time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Quest API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Cache database DSN")
	fs.StringVar(&secretsPath, "secrets", "", "Sealed session file path")
	fs.StringVar(&secretKey, "secret-key", "", "Session file passphrase")
	fs.IntVar(&pageLimit, "page-limit", 0, "Items per page")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh period (e.g., 90s)")
	fs.DurationVar(&notificationInterval, "notification-interval", 0, "Reminder period (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			PageLimit: pageLimit,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Secrets: Secrets{Path: secretsPath},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval:      refreshInterval,
			NotificationInterval: notificationInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
