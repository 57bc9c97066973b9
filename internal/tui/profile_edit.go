package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editName = iota
	editNickname
	editCurrentPassword
	editNewPassword
)

// profileEditModel changes the display name, the nickname and the password
// over the user screen. Blank fields are left as they are.
type profileEditModel struct {
	ctx     context.Context
	profile service.ClientProfileService
	session models.Session
	current models.Profile

	inputs []textinput.Model
	focus  int

	busy   bool
	status string
	errMsg string
	closed bool
}

func newProfileEditModel(ctx context.Context, profile service.ClientProfileService, session models.Session, current models.Profile) *profileEditModel {
	inputs := make([]textinput.Model, 4)

	inputs[editName] = textinput.New()
	inputs[editName].Placeholder = current.UserName
	inputs[editName].CharLimit = 64
	inputs[editName].Width = 40
	inputs[editName].Focus()

	inputs[editNickname] = textinput.New()
	inputs[editNickname].Placeholder = current.UserNickname
	inputs[editNickname].CharLimit = 32
	inputs[editNickname].Width = 40

	for _, i := range []int{editCurrentPassword, editNewPassword} {
		inputs[i] = textinput.New()
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
		inputs[i].Width = 40
	}

	return &profileEditModel{
		ctx:     ctx,
		profile: profile,
		session: session,
		current: current,
		inputs:  inputs,
	}
}

func (m *profileEditModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *profileEditModel) Update(msg tea.Msg) (*profileEditModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.message
		m.inputs[editCurrentPassword].SetValue("")
		m.inputs[editNewPassword].SetValue("")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *profileEditModel) handleKey(msg tea.KeyMsg) (*profileEditModel, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.closed = true
		return m, nil
	case m.busy:
		return m, nil
	case msg.String() == "tab" || msg.String() == "down":
		m.moveFocus(1)
		return m, nil
	case msg.String() == "shift+tab" || msg.String() == "up":
		m.moveFocus(-1)
		return m, nil
	case msg.String() == "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *profileEditModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *profileEditModel) submit() (*profileEditModel, tea.Cmd) {
	name := changedField(m.inputs[editName].Value(), m.current.UserName)
	nickname := changedField(m.inputs[editNickname].Value(), m.current.UserNickname)
	currentPassword := m.inputs[editCurrentPassword].Value()
	newPassword := m.inputs[editNewPassword].Value()

	if (currentPassword == "") != (newPassword == "") {
		m.errMsg = "Для смены пароля нужны текущий и новый пароль"
		return m, nil
	}
	if name == nil && nickname == nil && newPassword == "" {
		m.errMsg = "Нет изменений"
		return m, nil
	}

	m.errMsg, m.status = "", ""
	m.busy = true
	return m, m.cmdSave(name, nickname, currentPassword, newPassword)
}

// changedField returns the trimmed value, or nil when it is blank or equal
// to the current one.
func changedField(value, current string) *string {
	value = strings.TrimSpace(value)
	if value == "" || value == current {
		return nil
	}
	return &value
}

func (m *profileEditModel) View() string {
	var b strings.Builder

	labels := []string{
		"Имя            │ [",
		"Никнейм        │ [",
		"Текущий пароль │ [",
		"Новый пароль   │ [",
	}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.busy {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "tab: поле │ enter: сохранить │ esc: назад")
}

// cmdSave sends the profile change first and the password change second.
// The first failure stops the chain.
func (m *profileEditModel) cmdSave(name, nickname *string, currentPassword, newPassword string) tea.Cmd {
	ctx, profile, session := m.ctx, m.profile, m.session
	return func() tea.Msg {
		var messages []string
		if name != nil || nickname != nil {
			message, err := profile.UpdateProfile(ctx, session, name, nickname)
			if err != nil {
				return profileSavedMsg{err: err}
			}
			messages = append(messages, message)
		}
		if newPassword != "" {
			message, err := profile.UpdatePassword(ctx, session, currentPassword, newPassword)
			if err != nil {
				return profileSavedMsg{message: strings.Join(messages, ". "), err: err}
			}
			messages = append(messages, message)
		}
		return profileSavedMsg{message: strings.Join(messages, ". ")}
	}
}
