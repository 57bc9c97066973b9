package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

type clientProfileService struct {
	adapter     adapter.ServerAdapter
	invalidator Invalidator
	logger      *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, invalidator Invalidator, log *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, invalidator: invalidator, logger: log}
}

// UpdateProfile sends only the fields that are set and not blank.
func (p *clientProfileService) UpdateProfile(ctx context.Context, session models.Session, userName, userNickname *string) (string, error) {
	userName, userNickname = trimmedOrNil(userName), trimmedOrNil(userNickname)
	if userName == nil && userNickname == nil {
		return "", ErrNothingToUpdate
	}

	msg, err := p.adapter.UpdateProfile(ctx, session, userName, userNickname)
	if err != nil {
		return "", fmt.Errorf("update profile: %w", err)
	}

	p.invalidateProfile(ctx, session)
	return msg, nil
}

func (p *clientProfileService) UpdatePassword(ctx context.Context, session models.Session, currentPassword, newPassword string) (string, error) {
	if currentPassword == "" || newPassword == "" {
		return "", ErrEmptyCredentials
	}

	msg, err := p.adapter.UpdatePassword(ctx, session, currentPassword, newPassword)
	if err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}
	return msg, nil
}

func (p *clientProfileService) UpdateAvatar(ctx context.Context, session models.Session, avatarBase64 string) (string, error) {
	if avatarBase64 == "" {
		return "", ErrNothingToUpdate
	}

	msg, err := p.adapter.UpdateAvatar(ctx, session, avatarBase64)
	if err != nil {
		return "", fmt.Errorf("update avatar: %w", err)
	}

	p.invalidateProfile(ctx, session)
	return msg, nil
}

func (p *clientProfileService) invalidateProfile(ctx context.Context, session models.Session) {
	if p.invalidator != nil {
		p.invalidator.Invalidate(ctx, session, models.KindProfile)
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
