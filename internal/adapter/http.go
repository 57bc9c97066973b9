package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/utils"
	"github.com/MKhiriev/go-quest-client/models"
)

const (
	userEndpoint         = "/user_service.php"
	questEndpoint        = "/quest_service.php"
	ratingEndpoint       = "/rating_service.php"
	authEndpoint         = "/auth_service.php"
	notificationEndpoint = "/notification_service.php"
)

const (
	actionGetProfile         = "get_profile"
	actionGetAchievements    = "get_achievements"
	actionGetCats            = "get_cats"
	actionGetUserQuests      = "get_user_quests"
	actionGetAvailableQuests = "get_available_quests"
	actionGetRating          = "get_rating"
	actionGetQuestPreview    = "get_quest_preview"
	actionGetQuestStep       = "get_quest_step"
	actionAcceptQuest        = "accept_quest"
	actionSubmitQuestStep    = "submit_quest_step"
	actionUpdateProfile      = "update_profile"
	actionUpdatePassword     = "update_password"
	actionUpdateAvatar       = "update_avatar"
	actionLogin              = "login"
	actionRegisterStart      = "register_step1"
	actionRegisterConfirm    = "register_step2"
	actionForgotPassword     = "forgot_password"
	actionResetPassword      = "reset_password"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// post sends body as JSON and maps the reply to an envelope.
func (h *httpServerAdapter) post(ctx context.Context, endpoint, action string, body any) (models.Envelope, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)

	env, err := mapResponse(resp, err)
	if err != nil {
		h.logger.Error().Err(err).
			Str("func", "httpServerAdapter.post").
			Str("endpoint", endpoint).
			Str("action", action).
			Msg("request failed")
		return models.Envelope{}, err
	}
	return env, nil
}

func fetchPage[T any](ctx context.Context, h *httpServerAdapter, endpoint, action, itemsField string, session models.Session, page, limit int) (models.Page[T], error) {
	req := models.ResourceRequest{
		UserID: session.UserID,
		Token:  session.Token,
		Action: action,
		Page:   &page,
		Limit:  &limit,
	}

	env, err := h.post(ctx, endpoint, action, req)
	if err != nil {
		return models.Page[T]{}, err
	}

	result, err := decodePage[T](env, itemsField, page, limit)
	if err != nil {
		h.logger.Error().Err(err).
			Str("func", "fetchPage").
			Str("action", action).
			Int("page", page).
			Msg("unexpected response shape")
		return models.Page[T]{}, err
	}
	return result, nil
}

// FetchProfile implements [ServerAdapter]. The profile is read from
// data.profile.
func (h *httpServerAdapter) FetchProfile(ctx context.Context, session models.Session) (models.Profile, error) {
	req := models.ResourceRequest{UserID: session.UserID, Token: session.Token, Action: actionGetProfile}

	env, err := h.post(ctx, userEndpoint, actionGetProfile, req)
	if err != nil {
		return models.Profile{}, err
	}
	return decodeNested[models.Profile](env, "profile")
}

// FetchQuests implements [ServerAdapter]. Items are read from data.quests.
func (h *httpServerAdapter) FetchQuests(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Quest], error) {
	return fetchPage[models.Quest](ctx, h, questEndpoint, actionGetUserQuests, "quests", session, page, limit)
}

// FetchAchievements implements [ServerAdapter]. Items are read from
// data.achievements.
func (h *httpServerAdapter) FetchAchievements(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Achievement], error) {
	return fetchPage[models.Achievement](ctx, h, userEndpoint, actionGetAchievements, "achievements", session, page, limit)
}

// FetchCollectibles implements [ServerAdapter]. Items are read from data.cats.
func (h *httpServerAdapter) FetchCollectibles(ctx context.Context, session models.Session, page, limit int) (models.Page[models.Collectible], error) {
	return fetchPage[models.Collectible](ctx, h, userEndpoint, actionGetCats, "cats", session, page, limit)
}

// FetchAvailableQuests implements [ServerAdapter]. The server is known to
// report has_more=true on the last page, so it is clamped by page*limit<total.
func (h *httpServerAdapter) FetchAvailableQuests(ctx context.Context, session models.Session, page, limit int) (models.Page[models.AvailableQuest], error) {
	result, err := fetchPage[models.AvailableQuest](ctx, h, questEndpoint, actionGetAvailableQuests, "quests", session, page, limit)
	if err != nil {
		return result, err
	}

	result.HasMore = result.HasMore && result.Page*result.Limit < result.Total
	return result, nil
}

// FetchLeaderboard implements [ServerAdapter]. Items are read from data.users.
func (h *httpServerAdapter) FetchLeaderboard(ctx context.Context, session models.Session, page, limit int) (models.Page[models.LeaderboardEntry], error) {
	return fetchPage[models.LeaderboardEntry](ctx, h, ratingEndpoint, actionGetRating, "users", session, page, limit)
}

func (h *httpServerAdapter) FetchQuestPreview(ctx context.Context, session models.Session, questID int64) (models.QuestPreview, error) {
	req := models.QuestActionRequest{UserID: session.UserID, Token: session.Token, Action: actionGetQuestPreview, QuestID: &questID}

	env, err := h.post(ctx, questEndpoint, actionGetQuestPreview, req)
	if err != nil {
		return models.QuestPreview{}, err
	}
	return decodeNested[models.QuestPreview](env, "preview")
}

func (h *httpServerAdapter) FetchQuestStep(ctx context.Context, session models.Session, questID int64, stepNumber int) (models.QuestStep, error) {
	req := models.QuestActionRequest{
		UserID:     session.UserID,
		Token:      session.Token,
		Action:     actionGetQuestStep,
		QuestID:    &questID,
		StepNumber: &stepNumber,
	}

	env, err := h.post(ctx, questEndpoint, actionGetQuestStep, req)
	if err != nil {
		return models.QuestStep{}, err
	}
	return decodeNested[models.QuestStep](env, "step")
}

func (h *httpServerAdapter) AcceptQuest(ctx context.Context, session models.Session, questID int64) (string, error) {
	req := models.QuestActionRequest{UserID: session.UserID, Token: session.Token, Action: actionAcceptQuest, QuestID: &questID}

	env, err := h.post(ctx, questEndpoint, actionAcceptQuest, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// SubmitQuestStep implements [ServerAdapter]. The outcome is read from
// data.result.
func (h *httpServerAdapter) SubmitQuestStep(ctx context.Context, session models.Session, questID int64, stepNumber int, answer string) (models.SubmitResult, error) {
	req := models.QuestActionRequest{
		UserID:     session.UserID,
		Token:      session.Token,
		Action:     actionSubmitQuestStep,
		QuestID:    &questID,
		StepNumber: &stepNumber,
		Answer:     &answer,
	}

	env, err := h.post(ctx, questEndpoint, actionSubmitQuestStep, req)
	if err != nil {
		return models.SubmitResult{}, err
	}
	return decodeNested[models.SubmitResult](env, "result")
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, session models.Session, userName, userNickname *string) (string, error) {
	req := models.UpdateProfileRequest{
		UserID:       session.UserID,
		Token:        session.Token,
		Action:       actionUpdateProfile,
		UserName:     userName,
		UserNickname: userNickname,
	}

	env, err := h.post(ctx, userEndpoint, actionUpdateProfile, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (h *httpServerAdapter) UpdatePassword(ctx context.Context, session models.Session, currentPassword, newPassword string) (string, error) {
	req := models.UpdatePasswordRequest{
		UserID:          session.UserID,
		Token:           session.Token,
		Action:          actionUpdatePassword,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}

	env, err := h.post(ctx, userEndpoint, actionUpdatePassword, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (h *httpServerAdapter) UpdateAvatar(ctx context.Context, session models.Session, avatarBase64 string) (string, error) {
	req := models.UpdateAvatarRequest{
		UserID:       session.UserID,
		Token:        session.Token,
		Action:       actionUpdateAvatar,
		AvatarBase64: avatarBase64,
	}

	env, err := h.post(ctx, userEndpoint, actionUpdateAvatar, req)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// auth sends one auth_service action. When needSession is set, a reply
// without user_id and token is malformed.
func (h *httpServerAdapter) auth(ctx context.Context, action string, creds models.Credentials, needSession bool) (models.AuthResult, error) {
	env, err := h.post(ctx, authEndpoint, action, models.AuthRequest{Credentials: creds, Action: action})
	if err != nil {
		return models.AuthResult{}, err
	}

	if !hasData(env) {
		if needSession {
			return models.AuthResult{}, malformed("missing data")
		}
		return models.AuthResult{Email: creds.Email, Message: env.Message}, nil
	}

	result, err := decodeData[models.AuthResult](env)
	if err != nil {
		return models.AuthResult{}, err
	}
	result.Message = env.Message
	if result.Email == "" {
		result.Email = creds.Email
	}

	if needSession && !result.Session().Valid() {
		return models.AuthResult{}, malformed("auth reply without user_id or token")
	}
	return result, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return h.auth(ctx, actionLogin, creds, true)
}

func (h *httpServerAdapter) RegisterStart(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return h.auth(ctx, actionRegisterStart, creds, false)
}

func (h *httpServerAdapter) RegisterConfirm(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return h.auth(ctx, actionRegisterConfirm, creds, true)
}

func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) (models.AuthResult, error) {
	return h.auth(ctx, actionForgotPassword, models.Credentials{Email: email}, false)
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return h.auth(ctx, actionResetPassword, creds, false)
}

// FetchNotificationMessage implements [ServerAdapter] with a plain GET; the
// reminder text is the envelope message.
func (h *httpServerAdapter) FetchNotificationMessage(ctx context.Context) (models.Notification, error) {
	resp, err := h.client.R().SetContext(ctx).Get(notificationEndpoint)

	env, err := mapResponse(resp, err)
	if err != nil {
		h.logger.Error().Err(err).
			Str("func", "httpServerAdapter.FetchNotificationMessage").
			Msg("request failed")
		return models.Notification{}, err
	}
	return models.Notification{Message: env.Message, Timestamp: env.Timestamp}, nil
}
