package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	staleStyle      = lipgloss.NewStyle().Faint(true).Italic(true)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle        = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
