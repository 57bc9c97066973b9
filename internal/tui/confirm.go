package tui

// confirmModel asks a yes/no question over the main loop.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\n" + helpStyle.Render("y: да │ n/esc: нет"))
}
