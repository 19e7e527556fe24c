package tui

type confirmModel struct {
	id      string
	message string
}

func (m confirmModel) View() string {
	content := "Удалить \"" + m.message + "\"?\n\n"
	content += "y да    n / esc нет"
	return overlayBoxStyle.Render(content)
}
