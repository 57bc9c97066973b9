package tui

import (
	"github.com/MKhiriev/go-quest-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	forceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"))
	versionKey   = key.NewBinding(key.WithKeys("v"))
)

// RootModel routes the login flow between its pages. It owns ctrl+c, the
// version window on the menu and [NavigateTo]; a [LoginResult] carrying a
// valid session ends the program. Everything else goes to the current page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	session    models.Session
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, current: pages[startPage], buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuitKey) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, versionKey) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if _, onMenu := r.current.(*MenuModel); onMenu && key.Matches(msg, versionKey) {
			r.showBuildInfo = true
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)

	case LoginResult:
		if msg.Err == nil && msg.Session.Valid() {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.current = next
	r.showBuildInfo = false

	if nav.Payload == nil {
		return r, next.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	case r.current == nil:
		return appStyle.Render(renderPage("QUEST CLIENT", "", ""))
	}
	return appStyle.Render(r.current.View() + "\n  " + helpStyle.Render(r.buildInfo.String()))
}
