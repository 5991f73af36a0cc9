package tui

import (
	"strings"

	"chat-room/utils"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(utils.TruncateString(m.title, m.width)) + "\n")
	s.WriteString(m.renderBody() + "\n")
	s.WriteString(m.renderInputRow() + "\n")
	s.WriteString(m.renderFooter())

	lines := strings.Split(s.String(), "\n")
	if len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}
	return strings.Join(lines, "\n")
}

// renderBody renders the members and messages panes side by side. Each pane
// is clamped to its layout size so the mouse hit test matches the screen.
func (m Model) renderBody() string {
	members := m.renderPane(m.room.Members.View(), m.layout.membersWidth)
	messages := m.renderPane(m.room.Messages.View(), m.layout.messagesWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, members, messages)
}

func (m Model) renderPane(content string, width int) string {
	return paneStyle.
		Width(width - 2).
		Height(m.layout.bodyHeight - 2).
		MaxWidth(width).
		MaxHeight(m.layout.bodyHeight).
		Render(content)
}

// renderInputRow renders the text input next to the send button
func (m Model) renderInputRow() string {
	input := inputStyle
	button := buttonStyle
	if m.focus == FocusInput {
		input = focusedInputStyle
	} else {
		button = focusedButtonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		input.
			Width(m.layout.inputWidth-2).
			MaxWidth(m.layout.inputWidth).
			MaxHeight(m.layout.rowHeight).
			Render(m.room.Input.View()),
		" ",
		button.Render(buttonLabel),
	)
}

// renderFooter renders the status label and the key help
func (m Model) renderFooter() string {
	return statusStyle.Render(m.room.Status) + "\n" + helpStyle.Render(m.help.View(m.keys))
}
