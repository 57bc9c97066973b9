package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// questDetailModel shows one quest over the main loop: its preview, the
// current step of an accepted quest and the answer input.
type questDetailModel struct {
	ctx     context.Context
	quests  service.ClientQuestService
	session models.Session
	questID int64

	preview    *models.QuestPreview
	step       *models.QuestStep
	stepNumber int
	answer     textinput.Model

	busy   bool
	status string
	errMsg string
	closed bool
}

func newQuestDetailModel(ctx context.Context, quests service.ClientQuestService, session models.Session, questID int64, stepNumber int) *questDetailModel {
	answer := textinput.New()
	answer.Placeholder = "ответ"
	answer.CharLimit = 512
	answer.Width = 40

	if stepNumber < 1 {
		stepNumber = 1
	}

	return &questDetailModel{
		ctx:        ctx,
		quests:     quests,
		session:    session,
		questID:    questID,
		stepNumber: stepNumber,
		answer:     answer,
		busy:       true,
	}
}

func (m *questDetailModel) Init() tea.Cmd {
	return m.cmdPreview()
}

func (m *questDetailModel) Update(msg tea.Msg) (*questDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case previewLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.preview = &msg.preview
		if msg.preview.IsAccepted && m.stepNumber <= msg.preview.StepsCount {
			m.busy = true
			return m, m.cmdStep(m.stepNumber)
		}
		return m, nil

	case stepLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.step = &msg.step
		m.stepNumber = msg.step.StepNumber
		m.answer.SetValue("")
		m.answer.Focus()
		return m, textinput.Blink

	case acceptDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.message
		m.busy = true
		m.stepNumber = 1
		return m, m.cmdPreview()

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.answer.SetValue("")
		if msg.result.IsFinalStep {
			m.step = nil
			m.answer.Blur()
			m.status = rewardText(msg.result.Reward)
			return m, nil
		}
		m.status = "Шаг пройден"
		m.busy = true
		return m, m.cmdStep(m.stepNumber + 1)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *questDetailModel) handleKey(msg tea.KeyMsg) (*questDetailModel, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.closed = true
		return m, nil
	case m.busy:
		return m, nil
	case msg.String() == "enter":
		if m.step == nil {
			return m, nil
		}
		answer := strings.TrimSpace(m.answer.Value())
		if answer == "" {
			m.errMsg = "Введите ответ"
			return m, nil
		}
		m.errMsg, m.status = "", ""
		m.busy = true
		return m, m.cmdSubmit(m.stepNumber, answer)
	case msg.String() == "a" && m.step == nil:
		if m.preview == nil || m.preview.IsAccepted {
			return m, nil
		}
		m.errMsg, m.status = "", ""
		m.busy = true
		return m, m.cmdAccept()
	}

	if m.step == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m *questDetailModel) View() string {
	var b strings.Builder

	if m.preview == nil {
		if m.busy {
			b.WriteString("Загрузка...\n")
		}
	} else {
		p := m.preview
		fmt.Fprintf(&b, "Название │ %s\n", p.Title)
		fmt.Fprintf(&b, "Тип      │ %s\n", valueOrDash(&p.QuestType))
		fmt.Fprintf(&b, "Район    │ %s\n", valueOrDash(p.DistrictName))
		fmt.Fprintf(&b, "Награда  │ ★%d\n", p.RewardStars)
		fmt.Fprintf(&b, "Шагов    │ %d\n", p.StepsCount)
		if p.EndDate != nil {
			fmt.Fprintf(&b, "До       │ %s\n", *p.EndDate)
		}
		if p.Description != "" {
			b.WriteString("\n")
			b.WriteString(p.Description)
			b.WriteString("\n")
		}
	}

	if m.step != nil {
		fmt.Fprintf(&b, "\nШаг %d из %d (%d очк.)\n", m.step.StepNumber, m.preview.StepsCount, m.step.Points)
		b.WriteString(m.step.TaskDescription)
		b.WriteString("\n\nОтвет │ [")
		b.WriteString(m.answer.View())
		b.WriteString("]\n")
	}

	if m.busy && m.preview != nil {
		b.WriteString("\n...\n")
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

	return renderPage("КВЕСТ", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *questDetailModel) hotKeys() string {
	switch {
	case m.step != nil:
		return "enter: отправить │ esc: назад"
	case m.preview != nil && !m.preview.IsAccepted:
		return "a: принять │ esc: назад"
	default:
		return "esc: назад"
	}
}

func rewardText(reward *models.StepReward) string {
	if reward == nil {
		return "Квест завершён"
	}
	text := fmt.Sprintf("Квест завершён: +%d ★", reward.StarsEarned)
	if cat := reward.CatReward; cat != nil && cat.Name != nil {
		text += ", новый кот: " + *cat.Name
	}
	return text
}

func (m *questDetailModel) cmdPreview() tea.Cmd {
	ctx, quests, session, id := m.ctx, m.quests, m.session, m.questID
	return func() tea.Msg {
		p, err := quests.Preview(ctx, session, id)
		return previewLoadedMsg{preview: p, err: err}
	}
}

func (m *questDetailModel) cmdStep(number int) tea.Cmd {
	ctx, quests, session, id := m.ctx, m.quests, m.session, m.questID
	return func() tea.Msg {
		s, err := quests.Step(ctx, session, id, number)
		return stepLoadedMsg{step: s, err: err}
	}
}

func (m *questDetailModel) cmdAccept() tea.Cmd {
	ctx, quests, session, id := m.ctx, m.quests, m.session, m.questID
	return func() tea.Msg {
		message, err := quests.Accept(ctx, session, id)
		return acceptDoneMsg{message: message, err: err}
	}
}

func (m *questDetailModel) cmdSubmit(number int, answer string) tea.Cmd {
	ctx, quests, session, id := m.ctx, m.quests, m.session, m.questID
	return func() tea.Msg {
		res, err := quests.SubmitStep(ctx, session, id, number, answer)
		return submitDoneMsg{result: res, err: err}
	}
}
