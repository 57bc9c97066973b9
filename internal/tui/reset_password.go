package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ResetPasswordModel runs the forgot-password flow: email first, then the
// emailed code together with the new password.
type ResetPasswordModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	codeSent   bool
	email      textinput.Model
	inputs     []textinput.Model // code, new password
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewResetPasswordModel(ctx context.Context, auth service.ClientAuthService) *ResetPasswordModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	code := textinput.New()
	code.Placeholder = "code"
	code.CharLimit = 12
	code.Width = 20

	password := textinput.New()
	password.Placeholder = "new password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Width = 40

	return &ResetPasswordModel{
		ctx:    ctx,
		auth:   auth,
		email:  email,
		inputs: []textinput.Model{code, password},
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetRequestedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.message
		m.codeSent = true
		m.email.Blur()
		m.inputs[0].Focus()
		return m, textinput.Blink
	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		text := msg.message
		if text == "" {
			text = "Пароль изменён"
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: MenuNotice{Text: text}} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "shift+tab":
			if m.codeSent {
				m.inputs[m.focus].Blur()
				m.focus = (m.focus + 1) % len(m.inputs)
				m.inputs[m.focus].Focus()
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if !m.codeSent {
		m.email, cmd = m.email.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ResetPasswordModel) submit() (tea.Model, tea.Cmd) {
	ctx := m.ctx
	auth := m.auth
	email := strings.TrimSpace(m.email.Value())
	if email == "" {
		m.errMsg = "Введите email"
		return m, nil
	}

	m.errMsg = ""
	if !m.codeSent {
		m.submitting = true
		return m, func() tea.Msg {
			message, err := auth.ForgotPassword(ctx, email)
			return resetRequestedMsg{message: message, err: err}
		}
	}

	creds := models.Credentials{
		Email:    email,
		Code:     strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if creds.Code == "" || creds.Password == "" {
		m.errMsg = "Код и новый пароль обязательны"
		return m, nil
	}

	m.submitting = true
	return m, func() tea.Msg {
		message, err := auth.ResetPassword(ctx, creds)
		return resetDoneMsg{message: message, err: err}
	}
}

func (m *ResetPasswordModel) View() string {
	var b strings.Builder

	b.WriteString("Email          │ [")
	b.WriteString(m.email.View())
	b.WriteString("]\n")
	if m.codeSent {
		b.WriteString("Код из письма  │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Новый пароль   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n[Отправка...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВОССТАНОВЛЕНИЕ ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *ResetPasswordModel) reset() {
	m.email.SetValue("")
	m.email.Focus()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.codeSent = false
	m.submitting = false
	m.status = ""
	m.errMsg = ""
}
