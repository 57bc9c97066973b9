package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.Session{}, ErrEmptyCredentials
	}

	result, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	return a.storeSession(ctx, result.Session())
}

func (a *clientAuthService) RegisterStart(ctx context.Context, creds models.Credentials) (string, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return "", ErrEmptyCredentials
	}

	result, err := a.adapter.RegisterStart(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return result.Message, nil
}

func (a *clientAuthService) RegisterConfirm(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	creds.Code = strings.TrimSpace(creds.Code)
	if creds.Code == "" {
		return models.Session{}, ErrEmptyCode
	}

	result, err := a.adapter.RegisterConfirm(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("confirm registration: %w", err)
	}

	return a.storeSession(ctx, result.Session())
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyCredentials
	}

	result, err := a.adapter.ForgotPassword(ctx, email)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return result.Message, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, creds models.Credentials) (string, error) {
	creds.Code = strings.TrimSpace(creds.Code)
	if creds.Code == "" {
		return "", ErrEmptyCode
	}

	result, err := a.adapter.ResetPassword(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return result.Message, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.Secrets.Get(ctx)
	if errors.Is(err, store.ErrSecretNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		// an unreadable secret is as good as none; the user logs in again
		a.logger.Warn().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("stored session unusable")
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	return session, nil
}

// Logout removes the stored session first so that a failing cache wipe
// never leaves the user logged in.
func (a *clientAuthService) Logout(ctx context.Context, session models.Session) error {
	if err := a.localStore.Secrets.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := a.localStore.ClearAllUserData(ctx, session.UserID); err != nil {
		a.logger.Error().Err(err).
			Str("func", "clientAuthService.Logout").
			Int64("user_id", session.UserID).
			Msg("failed to clear cached data")
		return fmt.Errorf("clear cached data: %w", err)
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
	return nil
}

func (a *clientAuthService) storeSession(ctx context.Context, session models.Session) (models.Session, error) {
	if err := a.localStore.Secrets.Set(ctx, session); err != nil {
		// the session still works for this run
		a.logger.Warn().Err(err).
			Str("func", "clientAuthService.storeSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("session started")
	return session, nil
}
