package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-quest-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() RootModel {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), nil),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))
}

func TestRootModel_NavigateWithPayload(t *testing.T) {
	root := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: pageMenu, Payload: MenuNotice{Text: "Пароль изменён"}})
	require.NotNil(t, cmd)

	updated, _ = updated.Update(cmd())
	assert.Contains(t, updated.View(), "Пароль изменён")
}

func TestRootModel_LoginResultQuits(t *testing.T) {
	root := newTestRoot()
	session := models.Session{UserID: 7, Token: "token-7"}

	updated, cmd := root.Update(LoginResult{Session: session})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, session, updated.(RootModel).session)
}

func TestRootModel_FailedLoginStaysOnPage(t *testing.T) {
	root := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: pageLogin})
	require.NotNil(t, cmd)

	updated, _ = updated.Update(LoginResult{Err: errors.New("boom")})
	r := updated.(RootModel)
	assert.Empty(t, r.session.Token)
	assert.Contains(t, r.View(), "Ошибка")
}

func TestLoginModel_RequiresCredentials(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Email и пароль обязательны", updated.(*LoginModel).errMsg)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root := newTestRoot()

	assert.Contains(t, root.View(), "version 1.0.0")

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.Contains(t, updated.View(), "О ПРОГРАММЕ")

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.View(), "О ПРОГРАММЕ")
}
