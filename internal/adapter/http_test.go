// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/utils"
	"github.com/MKhiriev/go-quest-client/models"
)

var testSession = models.Session{UserID: 7, Token: "tok"}

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// jsonServer отвечает фиксированным телом и сохраняет последний запрос
func jsonServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil && r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			m := map[string]any{}
			_ = json.Unmarshal(raw, &m)
			m["_path"] = r.URL.Path
			m["_method"] = r.Method
			m["_request_id"] = r.Header.Get(utils.RequestIDHeader)
			*seen = m
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── pagination ──────────────────────────────────────────────────────────────

func TestFetchQuests_Success(t *testing.T) {
	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{
		"success": true, "message": "ok", "timestamp": 1,
		"data": {"quests": [{"id": 1, "title": "a"}, {"id": 2, "title": "b"}],
		         "total": 5, "page": 1, "has_more": true, "limit": 2}
	}`, &seen)

	got, err := newTestAdapter(t, srv.URL).FetchQuests(context.Background(), testSession, 1, 2)
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(2), got.Items[1].ID)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 2, got.Limit)
	assert.True(t, got.HasMore)

	assert.Equal(t, "/quest_service.php", seen["_path"])
	assert.Equal(t, http.MethodPost, seen["_method"])
	assert.Equal(t, "get_user_quests", seen["action"])
	assert.Equal(t, float64(7), seen["user_id"])
	assert.Equal(t, "tok", seen["token"])
	assert.Equal(t, float64(1), seen["page"])
	assert.Equal(t, float64(2), seen["limit"])
	assert.NotEmpty(t, seen["_request_id"])
}

func TestFetchPage_ItemsFieldPerKind(t *testing.T) {
	ctx := context.Background()

	t.Run("achievements", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"achievements":[{"id":3}],"total":1}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).FetchAchievements(ctx, testSession, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Items[0].ID)
		assert.Equal(t, "/user_service.php", seen["_path"])
		assert.Equal(t, "get_achievements", seen["action"])
	})

	t.Run("collectibles", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"cats":[{"id":4,"image_url":"x.png"}]}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).FetchCollectibles(ctx, testSession, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, "x.png", got.Items[0].ImageURL)
		assert.Equal(t, "get_cats", seen["action"])
	})

	t.Run("leaderboard", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"users":[{"id":9,"rank":1}],"total":1,"page":1,"has_more":false,"current_user_rank":12}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).FetchLeaderboard(ctx, testSession, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Items[0].Rank)
		require.NotNil(t, got.CurrentUserRank)
		assert.Equal(t, 12, *got.CurrentUserRank)
		assert.Equal(t, "/rating_service.php", seen["_path"])
		assert.Equal(t, "get_rating", seen["action"])
	})
}

func TestFetchPage_MetaDefaults(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"achievements":[{"id":1}]}}`, nil)

	got, err := newTestAdapter(t, srv.URL).FetchAchievements(context.Background(), testSession, 3, 20)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 20, got.Limit)
	assert.Equal(t, 0, got.Total)
	assert.False(t, got.HasMore)
	assert.Nil(t, got.CurrentUserRank)
}

func TestFetchPage_EmptyItems(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"quests":[],"total":0,"has_more":false}}`, nil)

	got, err := newTestAdapter(t, srv.URL).FetchQuests(context.Background(), testSession, 1, 20)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestFetchAvailableQuests_ClampsHasMore(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "last page reported as has_more",
			body: `{"success":true,"data":{"quests":[{"id":1}],"total":4,"page":2,"limit":2,"has_more":true}}`,
			want: false,
		},
		{
			name: "more pages remain",
			body: `{"success":true,"data":{"quests":[{"id":1}],"total":5,"page":2,"limit":2,"has_more":true}}`,
			want: true,
		},
		{
			name: "server says no more",
			body: `{"success":true,"data":{"quests":[{"id":1}],"total":50,"page":1,"limit":2,"has_more":false}}`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen map[string]any
			srv := jsonServer(t, http.StatusOK, tt.body, &seen)

			got, err := newTestAdapter(t, srv.URL).FetchAvailableQuests(context.Background(), testSession, 2, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.HasMore)
			assert.Equal(t, "get_available_quests", seen["action"])
		})
	}
}

// ── error kinds ─────────────────────────────────────────────────────────────

func TestFetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).FetchQuests(context.Background(), testSession, 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrServerRejected)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestFetch_ServerRejected(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":false,"message":"Invalid token","timestamp":1}`, nil)

	_, err := newTestAdapter(t, srv.URL).FetchQuests(context.Background(), testSession, 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerRejected)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Invalid token", rejected.Message)
	assert.Equal(t, http.StatusOK, rejected.Status)
}

func TestFetch_HTTPStatusRejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "envelope with message", body: `{"success":false,"message":"Unauthorized user"}`, wantMsg: "Unauthorized user"},
		{name: "plain text body", body: `oops`, wantMsg: http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusInternalServerError, tt.body, nil)

			_, err := newTestAdapter(t, srv.URL).FetchProfile(context.Background(), testSession)
			var rejected *RejectedError
			require.True(t, errors.As(err, &rejected))
			assert.Equal(t, http.StatusInternalServerError, rejected.Status)
			assert.Equal(t, tt.wantMsg, rejected.Message)
		})
	}
}

func TestFetch_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>`},
		{name: "missing data", body: `{"success":true,"message":"ok"}`},
		{name: "null data", body: `{"success":true,"data":null}`},
		{name: "missing items field", body: `{"success":true,"data":{"total":3,"page":1}}`},
		{name: "items not a list", body: `{"success":true,"data":{"quests":{"id":1}}}`},
		{name: "flat item without wrapper", body: `{"success":true,"data":[{"id":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, tt.body, nil)

			_, err := newTestAdapter(t, srv.URL).FetchQuests(context.Background(), testSession, 1, 20)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.NotErrorIs(t, err, ErrNetwork)
		})
	}
}

// ── single objects ──────────────────────────────────────────────────────────

func TestFetchProfile(t *testing.T) {
	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"profile":{"id":7,"user_name":"Ann","stars":40,"level":3,"next_level_stars":60}}}`, &seen)

	got, err := newTestAdapter(t, srv.URL).FetchProfile(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.UserName)
	assert.Equal(t, 40, got.Stars)
	assert.Equal(t, "get_profile", seen["action"])
	_, hasPage := seen["page"]
	assert.False(t, hasPage)
}

func TestFetchProfile_FlatFieldsAreMalformed(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"id":7,"user_name":"Ann"}}`, nil)

	_, err := newTestAdapter(t, srv.URL).FetchProfile(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestQuestActions(t *testing.T) {
	ctx := context.Background()

	t.Run("preview", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"preview":{"id":5,"title":"Old town","steps_count":3}}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).FetchQuestPreview(ctx, testSession, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, got.StepsCount)
		assert.Equal(t, float64(5), seen["quest_id"])
	})

	t.Run("step", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"step":{"step_id":11,"step_number":2}}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).FetchQuestStep(ctx, testSession, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.StepID)
		assert.Equal(t, float64(2), seen["step_number"])
	})

	t.Run("accept", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"Quest accepted"}`, &seen)
		msg, err := newTestAdapter(t, srv.URL).AcceptQuest(ctx, testSession, 5)
		require.NoError(t, err)
		assert.Equal(t, "Quest accepted", msg)
		assert.Equal(t, "accept_quest", seen["action"])
	})

	t.Run("submit", func(t *testing.T) {
		var seen map[string]any
		srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"result":{"is_final_step":true,"reward":{"stars_earned":15,"quest_type":"city"}}}}`, &seen)
		got, err := newTestAdapter(t, srv.URL).SubmitQuestStep(ctx, testSession, 5, 3, "42")
		require.NoError(t, err)
		assert.True(t, got.IsFinalStep)
		require.NotNil(t, got.Reward)
		assert.Equal(t, 15, got.Reward.StarsEarned)
		assert.Equal(t, "42", seen["answer"])
	})
}

func TestProfileMutations(t *testing.T) {
	ctx := context.Background()
	name := "Ann"

	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"Profile updated"}`, &seen)
	a := newTestAdapter(t, srv.URL)

	msg, err := a.UpdateProfile(ctx, testSession, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Profile updated", msg)
	assert.Equal(t, "update_profile", seen["action"])
	assert.Equal(t, "Ann", seen["user_name"])
	_, hasNick := seen["user_nickname"]
	assert.False(t, hasNick)

	_, err = a.UpdatePassword(ctx, testSession, "old", "new")
	require.NoError(t, err)
	assert.Equal(t, "update_password", seen["action"])
	assert.Equal(t, "new", seen["new_password"])

	_, err = a.UpdateAvatar(ctx, testSession, "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "update_avatar", seen["action"])
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"Welcome","data":{"user_id":7,"email":"a@b.c","token":"tok"}}`, &seen)

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 7, Token: "tok", Email: "a@b.c"}, got.Session())
	assert.Equal(t, "Welcome", got.Message)

	assert.Equal(t, "/auth_service.php", seen["_path"])
	assert.Equal(t, "login", seen["action"])
	assert.Equal(t, "pw", seen["password"])
	_, hasCode := seen["code"]
	assert.False(t, hasCode)
}

func TestLogin_WithoutTokenIsMalformed(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"user_id":7}}`, nil)

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":false,"message":"Wrong email or password"}`, nil)

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Wrong email or password", rejected.Message)
}

func TestAuthSteps_MessageOnly(t *testing.T) {
	ctx := context.Background()
	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{"success":true,"message":"Code sent"}`, &seen)
	a := newTestAdapter(t, srv.URL)

	got, err := a.RegisterStart(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Code sent", got.Message)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, "register_step1", seen["action"])

	_, err = a.ForgotPassword(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "forgot_password", seen["action"])

	_, err = a.ResetPassword(ctx, models.Credentials{Email: "a@b.c", Code: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "reset_password", seen["action"])
	assert.Equal(t, "1234", seen["code"])

	// подтверждение регистрации обязано вернуть сессию
	_, err = a.RegisterConfirm(ctx, models.Credentials{Email: "a@b.c", Code: "1234"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, "register_step2", seen["action"])
}

// ── notification ────────────────────────────────────────────────────────────

func TestFetchNotificationMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notification_service.php", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"message":"New quests are waiting","timestamp":1700000000}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchNotificationMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New quests are waiting", got.Message)
	assert.Equal(t, int64(1700000000), got.Timestamp)
}

// ── request id & base url ───────────────────────────────────────────────────

func TestRequestID_TakenFromContext(t *testing.T) {
	var seen map[string]any
	srv := jsonServer(t, http.StatusOK, `{"success":true,"data":{"profile":{"id":7}}}`, &seen)

	ctx := utils.WithRequestID(context.Background(), "req-123")
	_, err := newTestAdapter(t, srv.URL).FetchProfile(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, "req-123", seen["_request_id"])
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "quests.example.com/api", want: "http://quests.example.com/api"},
		{name: "trims trailing slash", raw: "https://quests.example.com/api/", want: "https://quests.example.com/api"},
		{name: "keeps port", raw: " localhost:8080 ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectedError_Is(t *testing.T) {
	err := error(&RejectedError{Status: 200, Message: "nope"})
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "nope")
	assert.Contains(t, (&RejectedError{Status: 502}).Error(), "502")
}
