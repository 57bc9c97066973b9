package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerStage int

const (
	registerStageAccount registerStage = iota
	registerStageCode
)

// RegisterModel is the Bubble Tea model for the two-step registration screen.
// The first step collects email and password and asks the server to send a
// verification code; the second step collects the code. A confirmed
// registration produces a [LoginResult], so the user is logged in at once.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	stage      registerStage
	inputs     []textinput.Model
	code       textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with email, password and
// password confirmation inputs.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].CharLimit = 254
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	code := textinput.New()
	code.Placeholder = "code"
	code.CharLimit = 12
	code.Width = 20

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
		code:   code,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerStartedMsg: on success switches to the code step.
//   - [LoginResult]: only failures reach the page; success is handled by the router.
//   - esc: resets the form and navigates back to the menu.
//   - tab / shift+tab: moves focus between inputs of the first step.
//   - enter: validates and submits the current step.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerStartedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.message
		m.stage = registerStageCode
		m.inputs[m.focus].Blur()
		m.code.Focus()
		return m, textinput.Blink
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			if m.stage == registerStageAccount {
				m.focusNext()
			}
			return m, nil
		case "shift+tab":
			if m.stage == registerStageAccount {
				m.focusPrev()
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
	if m.stage == registerStageCode {
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()

	if m.stage == registerStageCode {
		code := strings.TrimSpace(m.code.Value())
		if code == "" {
			m.errMsg = "Введите код из письма"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdConfirm(models.Credentials{Email: email, Password: pass, Code: code})
	}

	repeat := m.inputs[2].Value()
	if email == "" || pass == "" || repeat == "" {
		m.errMsg = "Все поля обязательны"
		return m, nil
	}
	if pass != repeat {
		m.errMsg = "Пароли не совпадают"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdStart(models.Credentials{Email: email, Password: pass})
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder

	if m.stage == registerStageAccount {
		b.WriteString("Поле           │ Значение\n")
		b.WriteString("───────────────┼────────────────────────────────────\n")
		b.WriteString("Email          │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("Пароль         │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
		b.WriteString("Повтор пароля  │ [")
		b.WriteString(m.inputs[2].View())
		b.WriteString("]\n")
	} else {
		if m.status != "" {
			b.WriteString(noticeStyle.Render(m.status))
			b.WriteString("\n\n")
		}
		b.WriteString("Код из письма  │ [")
		b.WriteString(m.code.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Отправка...]\n")
	} else {
		b.WriteString("\n[Продолжить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdStart(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		message, err := auth.RegisterStart(ctx, creds)
		return registerStartedMsg{message: message, err: err}
	}
}

func (m *RegisterModel) cmdConfirm(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.RegisterConfirm(ctx, creds)
		return LoginResult{Session: session, Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.code.SetValue("")
	m.code.Blur()
	m.stage = registerStageAccount
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
