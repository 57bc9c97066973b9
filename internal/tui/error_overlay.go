package tui

// errorOverlayModel covers the main loop until enter or esc is pressed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Не удалось выполнить действие") + "\n\n" +
			m.message + "\n\n" +
			helpStyle.Render("enter/esc: закрыть"),
	)
}
