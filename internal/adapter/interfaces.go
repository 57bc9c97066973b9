// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the quest client and
// the remote quest service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the JSON-over-HTTP protocol. The package ships one implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every failure returned by an adapter method matches exactly one of
// [ErrNetwork], [ErrServerRejected] or [ErrMalformedResponse] under
// [errors.Is], so callers can react per kind without inspecting transport
// details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quest-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the quest service. Every
// authenticated call takes the caller's [models.Session]; the adapter keeps
// no session state of its own.
type ServerAdapter interface {
	// FetchProfile returns the profile of session.UserID (action get_profile).
	FetchProfile(ctx context.Context, session models.Session) (models.Profile, error)

	// FetchQuests returns one page of the user's own quests.
	FetchQuests(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Quest], error)

	// FetchAchievements returns one page of the user's achievements.
	FetchAchievements(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Achievement], error)

	// FetchCollectibles returns one page of the user's collectible cats.
	FetchCollectibles(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Collectible], error)

	// FetchAvailableQuests returns one page of quests the user can accept.
	FetchAvailableQuests(ctx context.Context, session models.Session, page, limit int) (models.Page[models.AvailableQuest], error)

	// FetchLeaderboard returns one page of the rating. The caller's rank,
	// when reported, is carried in Page.CurrentUserRank.
	FetchLeaderboard(ctx context.Context, session models.Session, page, limit int) (models.Page[models.LeaderboardEntry], error)

	FetchQuestPreview(ctx context.Context, session models.Session, questID int64) (models.QuestPreview, error)
	FetchQuestStep(ctx context.Context, session models.Session, questID int64, stepNumber int) (models.QuestStep, error)

	// AcceptQuest and the update calls return the server's message on success.
	AcceptQuest(ctx context.Context, session models.Session, questID int64) (string, error)
	SubmitQuestStep(ctx context.Context, session models.Session, questID int64, stepNumber int, answer string) (models.SubmitResult, error)
	UpdateProfile(ctx context.Context, session models.Session, userName, userNickname *string) (string, error)
	UpdatePassword(ctx context.Context, session models.Session, currentPassword, newPassword string) (string, error)
	UpdateAvatar(ctx context.Context, session models.Session, avatarBase64 string) (string, error)

	// Login and RegisterConfirm return a result with a usable session.
	// RegisterStart, ForgotPassword and ResetPassword only carry the server
	// message.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	RegisterStart(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	RegisterConfirm(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (models.AuthResult, error)
	ResetPassword(ctx context.Context, creds models.Credentials) (models.AuthResult, error)

	// FetchNotificationMessage reads the reminder text. It needs no session.
	FetchNotificationMessage(ctx context.Context) (models.Notification, error)
}
