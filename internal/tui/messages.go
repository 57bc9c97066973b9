package tui

import (
	"github.com/MKhiriev/go-quest-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow on success.
type LoginResult struct {
	Session models.Session
	Err     error
}

type registerStartedMsg struct {
	message string
	err     error
}

type resetRequestedMsg struct {
	message string
	err     error
}

type resetDoneMsg struct {
	message string
	err     error
}

// MenuNotice is shown above the menu after a finished flow.
type MenuNotice struct {
	Text string
}

type changedMsg struct{}

type notificationMsg struct {
	n models.Notification
}

type previewLoadedMsg struct {
	preview models.QuestPreview
	err     error
}

type stepLoadedMsg struct {
	step models.QuestStep
	err  error
}

type acceptDoneMsg struct {
	message string
	err     error
}

type submitDoneMsg struct {
	result models.SubmitResult
	err    error
}

type profileSavedMsg struct {
	message string
	err     error
}

type clearStatusMsg struct{}
