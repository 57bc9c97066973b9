package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 5 * time.Second

// screenActionMsg reports a finished screen command. It also forces a
// redraw when the command changed nothing the synchronizers publish.
type screenActionMsg struct {
	err error
}

type screenTab struct {
	id    service.ScreenID
	title string
}

var screenTabs = []screenTab{
	{id: service.ScreenUser, title: "1 Профиль"},
	{id: service.ScreenHome, title: "2 Квесты"},
	{id: service.ScreenRating, title: "3 Рейтинг"},
}

// mainLoopModel is the logged-in part of the client. It reads snapshots
// from the screens and re-renders on every change signal.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	screens  *service.Screens
	session  models.Session
	interval time.Duration

	changes <-chan struct{}
	notices <-chan models.Notification

	cursors map[models.ResourceKind]int
	detail  *questDetailModel
	edit    *profileEditModel
	confirm *confirmModel
	overlay *errorOverlayModel
	spinner spinner.Model
	status  string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, screens *service.Screens, session models.Session, interval time.Duration, notices <-chan models.Notification) mainLoopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		screens:  screens,
		session:  session,
		interval: interval,
		changes:  screens.Changes(ctx),
		notices:  notices,
		cursors:  make(map[models.ResourceKind]int),
		spinner:  sp,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.waitForChange(),
		m.waitForNotification(),
		m.cmdShow(service.ScreenUser),
		m.spinner.Tick,
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.clampCursor()
		return m, m.waitForChange()

	case notificationMsg:
		m.status = msg.n.Message
		return m, tea.Batch(m.waitForNotification(), clearStatusAfter(statusTTL))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case screenActionMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case previewLoadedMsg, stepLoadedMsg, acceptDoneMsg, submitDoneMsg:
		if m.detail == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case profileSavedMsg:
		if m.edit == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.no, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.detail != nil {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		if m.detail.closed {
			m.detail = nil
		}
		return m, cmd
	}

	if m.edit != nil {
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		if m.edit.closed {
			m.edit = nil
		}
		return m, cmd
	}

	kind, list := m.activeList()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.confirm = &confirmModel{message: "Выйти из аккаунта? Сохранённые данные будут удалены."}
	case key.Matches(msg, keys.profile):
		return m, m.cmdShow(service.ScreenUser)
	case key.Matches(msg, keys.home):
		return m, m.cmdShow(service.ScreenHome)
	case key.Matches(msg, keys.rating):
		return m, m.cmdShow(service.ScreenRating)
	case key.Matches(msg, keys.tab):
		return m, m.cmdActivate(1)
	case key.Matches(msg, keys.backtab):
		return m, m.cmdActivate(-1)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.more):
		return m, m.cmdLoadMore()
	case key.Matches(msg, keys.up):
		if m.cursors[kind] > 0 {
			m.cursors[kind]--
		}
	case key.Matches(msg, keys.down):
		if m.cursors[kind] < len(list.rows)-1 {
			m.cursors[kind]++
		}
		if list.nearEnd(m.cursors[kind]) {
			return m, m.cmdLoadMore()
		}
	case key.Matches(msg, keys.edit):
		if m.screens.Visible() != service.ScreenUser {
			return m, nil
		}
		current, _ := m.screens.User.Profile.Snapshot().Profile()
		m.edit = newProfileEditModel(m.ctx, m.services.ProfileService, m.session, current)
		return m, m.edit.Init()
	case key.Matches(msg, keys.enter):
		questID, step, ok := m.selectedQuest()
		if !ok {
			return m, nil
		}
		m.detail = newQuestDetailModel(m.ctx, m.services.QuestService, m.session, questID, step)
		return m, m.detail.Init()
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}
	if m.detail != nil {
		return m.detail.View()
	}
	if m.edit != nil {
		return m.edit.View()
	}

	var b strings.Builder

	visible := m.screens.Visible()
	tabs := make([]string, 0, len(screenTabs))
	for _, t := range screenTabs {
		if t.id == visible {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, tabStyle.Render(t.title))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	if visible == service.ScreenUser {
		b.WriteString(formatProfile(m.screens.User.Profile.Snapshot()))
		b.WriteString("\n\n")
	}

	kind, list := m.activeList()
	coord := m.screens.Coordinator(visible)
	if kinds := coord.Kinds(); len(kinds) > 1 {
		sub := make([]string, 0, len(kinds))
		for _, k := range kinds {
			if k == kind {
				sub = append(sub, activeTabStyle.Render(kindTitle(k)))
			} else {
				sub = append(sub, tabStyle.Render(kindTitle(k)))
			}
		}
		b.WriteString(strings.Join(sub, " │ "))
	} else {
		b.WriteString(titleStyle.Render(kindTitle(kind)))
	}
	if list.loading || list.syncing || list.more {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(list.render(m.cursors[kind]))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.status))
	}

	return renderPage("QUEST CLIENT", b.String(), m.hotKeys(kind))
}

func (m mainLoopModel) hotKeys(kind models.ResourceKind) string {
	help := "1/2/3: экраны │ tab: раздел │ r: обновить │ m: ещё"
	if m.screens.Visible() == service.ScreenUser {
		help += " │ e: профиль"
	}
	if kind == models.KindQuests || kind == models.KindAvailableQuests {
		help += " │ enter: открыть"
	}
	return help + " │ L: выйти из аккаунта │ q: выход"
}

// activeList renders the visible collection of the visible screen.
func (m mainLoopModel) activeList() (models.ResourceKind, listState) {
	coord := m.screens.Coordinator(m.screens.Visible())
	kind := coord.Active()

	switch kind {
	case models.KindQuests:
		return kind, collectionState(m.screens.User.Quests.Snapshot(), formatQuest)
	case models.KindAchievements:
		return kind, collectionState(m.screens.User.Achievements.Snapshot(), formatAchievement)
	case models.KindCollectibles:
		return kind, collectionState(m.screens.User.Collectibles.Snapshot(), formatCollectible)
	case models.KindAvailableQuests:
		return kind, collectionState(m.screens.Home.AvailableQuests.Snapshot(), formatAvailableQuest)
	case models.KindLeaderboard:
		return kind, collectionState(m.screens.Rating.Leaderboard.Snapshot(), formatLeader)
	}
	return kind, listState{}
}

// selectedQuest returns the quest under the cursor and the step to open.
func (m mainLoopModel) selectedQuest() (int64, int, bool) {
	kind, _ := m.activeList()
	cursor := m.cursors[kind]

	switch kind {
	case models.KindQuests:
		view, ok := m.screens.User.Quests.Snapshot().CurrentView()
		if !ok || cursor >= len(view.Items) {
			return 0, 0, false
		}
		q := view.Items[cursor]
		return q.ID, q.Progress + 1, true
	case models.KindAvailableQuests:
		view, ok := m.screens.Home.AvailableQuests.Snapshot().CurrentView()
		if !ok || cursor >= len(view.Items) {
			return 0, 0, false
		}
		return view.Items[cursor].ID, 1, true
	}
	return 0, 0, false
}

func (m mainLoopModel) clampCursor() {
	kind, list := m.activeList()
	if c := m.cursors[kind]; c >= len(list.rows) {
		m.cursors[kind] = max(len(list.rows)-1, 0)
	}
}

func (m mainLoopModel) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m mainLoopModel) waitForNotification() tea.Cmd {
	ch := m.notices
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg{n: n}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) cmdShow(id service.ScreenID) tea.Cmd {
	ctx, screens, session, interval := m.ctx, m.screens, m.session, m.interval
	return func() tea.Msg {
		return screenActionMsg{err: screens.Show(ctx, session, id, interval)}
	}
}

func (m mainLoopModel) cmdActivate(step int) tea.Cmd {
	ctx, session := m.ctx, m.session
	coord := m.screens.Coordinator(m.screens.Visible())
	return func() tea.Msg {
		kinds := coord.Kinds()
		if len(kinds) < 2 {
			return nil
		}
		idx := 0
		for i, k := range kinds {
			if k == coord.Active() {
				idx = i
			}
		}
		next := kinds[(idx+step+len(kinds))%len(kinds)]
		return screenActionMsg{err: coord.Activate(ctx, session, next)}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.session
	coord := m.screens.Coordinator(m.screens.Visible())
	return func() tea.Msg {
		coord.RefreshAll(ctx, session)
		return nil
	}
}

func (m mainLoopModel) cmdLoadMore() tea.Cmd {
	ctx, session := m.ctx, m.session
	coord := m.screens.Coordinator(m.screens.Visible())
	return func() tea.Msg {
		coord.LoadMore(ctx, session)
		return nil
	}
}
