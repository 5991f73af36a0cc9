package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	}

	// Cursor blink and friends belong to the text input.
	var cmd tea.Cmd
	m.room.Input, cmd = m.room.Input.Update(msg)
	return m, cmd
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = computeLayout(m.width, m.height, m.memberPanePercent, m.inputHeight)

	m.room.Members.SetSize(m.layout.membersWidth-2, m.layout.bodyHeight-2)
	m.room.Messages.SetSize(m.layout.messagesWidth-2, m.layout.bodyHeight-2)
	m.room.Input.SetWidth(m.layout.inputWidth - 2)
	m.help.Width = m.width

	return m, nil
}

// handleKeyMessage routes keys to the focused control
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Send):
		m.room.OnSendClicked(SendEvent{Trigger: TriggerShortcut})
		return m, nil
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.toggleFocus()
	}

	if m.focus == FocusButton {
		if key.Matches(msg, m.keys.Press) {
			m.room.OnSendClicked(SendEvent{Trigger: TriggerButton})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.room.Input, cmd = m.room.Input.Update(msg)
	return m, cmd
}

// toggleFocus moves focus between the text input and the send button
func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == FocusInput {
		m.focus = FocusButton
		m.room.Input.Blur()
		return m, nil
	}
	m.focus = FocusInput
	return m, m.room.Input.Focus()
}

// handleMouseMessage handles clicks on the send button
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.width == 0 || !m.layout.button.contains(msg.X, msg.Y) {
		return m, nil
	}
	m.room.OnSendClicked(SendEvent{Trigger: TriggerMouse})
	return m, nil
}
