package tui

// errorOverlayModel covers the request list until it is dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Cannot complete the action") + "\n\n" +
		m.message + "\n\n" +
		helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

// confirmModel asks once more before an approval is sent. Decisions are
// final on the backend.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n" +
		keyStyle.Render("y") + " approve    " + keyStyle.Render("n") + " back to form"
	return overlayBoxStyle.Render(content)
}
