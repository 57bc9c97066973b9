package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/internal/tui"
	"github.com/MKhiriev/go-quest-client/internal/workers"
	"github.com/MKhiriev/go-quest-client/models"
)

// App owns the process lifecycle: login, one set of screens per session
// and logout back to the login flow.
type App struct {
	cfg           *config.ClientConfig
	storages      *store.ClientStorages
	adapter       adapter.ServerAdapter
	auth          service.ClientAuthService
	ui            *tui.TUI
	notifications *tui.Notifications
	logger        *logger.Logger
}

func NewApp(cfg *config.ClientConfig, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, ui *tui.TUI, notifications *tui.Notifications, log *logger.Logger) *App {
	return &App{
		cfg:           cfg,
		storages:      storages,
		adapter:       serverAdapter,
		auth:          service.NewClientAuthService(storages, serverAdapter, log),
		ui:            ui,
		notifications: notifications,
		logger:        log,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.runSession(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.auth.Logout(ctx, session); err != nil {
			a.logger.Err(err).Int64("user_id", session.UserID).Msg("logout finished with errors")
		}
	}
}

func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.auth.RestoreSession(ctx)
	if err == nil {
		a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, service.ErrNoSession) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx, a.auth)
}

func (a *App) runSession(ctx context.Context, session models.Session) (bool, error) {
	screens := service.NewScreens(a.storages, a.adapter, a.cfg.App.PageLimit, a.logger)
	defer screens.Close()

	services := service.NewClientServices(
		a.storages,
		a.adapter,
		screens.Invalidator(),
		a.notifications,
		a.cfg.Workers.NotificationInterval,
		a.logger,
	)

	background := workers.New(services.NotificationJob)
	background.Start(ctx)
	defer background.Stop()

	logout, err := a.ui.MainLoop(ctx, session, services, screens, a.cfg.Workers.RefreshInterval)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
