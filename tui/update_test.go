package tui

import (
	"testing"

	"chat-room/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(models.DefaultConfig, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update must return a tui.Model")
	return result, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestInit_LeavesStateUntouched(t *testing.T) {
	m := NewModel(models.DefaultConfig, nil)

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.room.Input.Value())
	assert.Empty(t, m.room.Members.Items())
	assert.Empty(t, m.room.Messages.Items())
	assert.Equal(t, FocusInput, m.focus)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, 30, m.layout.membersWidth)
	assert.Equal(t, 70, m.layout.messagesWidth)
	assert.Equal(t, m.layout.inputWidth+1, m.layout.button.x)
}

func TestUpdate_WindowSize_Tiny(t *testing.T) {
	m := NewModel(models.DefaultConfig, nil)

	assert.NotPanics(t, func() {
		next, _ := m.Update(tea.WindowSizeMsg{Width: 1, Height: 1})
		_ = next.View()
	})
}

func TestUpdate_TypingGoesToInput(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "hi")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "there")

	assert.Equal(t, "hi\nthere", m.room.Input.Value())
}

func TestUpdate_ShortcutSends(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "hello")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, "", m.Room().Input.Value())
	assert.Empty(t, m.room.Members.Items())
	assert.Empty(t, m.room.Messages.Items())
	assert.Empty(t, m.room.Status)
}

func TestUpdate_ButtonFocusAndPress(t *testing.T) {
	for _, press := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeySpace, Runes: []rune{' '}}} {
		t.Run(press.String(), func(t *testing.T) {
			m := newTestModel(t)
			m = typeText(t, m, "hello")

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
			require.Equal(t, FocusButton, m.focus)
			assert.False(t, m.room.Input.Focused())

			m, _ = update(t, m, press)
			assert.Equal(t, "", m.room.Input.Value())
		})
	}
}

func TestUpdate_ButtonFocusIgnoresTyping(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = typeText(t, m, "ignored")

	assert.Equal(t, "", m.room.Input.Value())
}

func TestUpdate_FocusCycles(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusButton, m.focus)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusInput, m.focus)
	assert.True(t, m.room.Input.Focused())
	assert.NotNil(t, cmd)
}

func TestUpdate_MouseClickOnButtonSends(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "hello")
	b := m.layout.button

	m, _ = update(t, m, tea.MouseMsg{
		X:      b.x + 1,
		Y:      b.y + 1,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})

	assert.Equal(t, "", m.room.Input.Value())
	assert.Equal(t, FocusInput, m.focus)
}

func TestUpdate_MouseElsewhereIgnored(t *testing.T) {
	tests := []struct {
		name string
		msg  func(b rect) tea.MouseMsg
	}{
		{"outside button", func(b rect) tea.MouseMsg {
			return tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
		}},
		{"left press without release", func(b rect) tea.MouseMsg {
			return tea.MouseMsg{X: b.x + 1, Y: b.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
		}},
		{"row above button", func(b rect) tea.MouseMsg {
			return tea.MouseMsg{X: b.x + 1, Y: b.y - 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
		}},
		{"right button", func(b rect) tea.MouseMsg {
			return tea.MouseMsg{X: b.x, Y: b.y, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight}
		}},
		{"motion", func(b rect) tea.MouseMsg {
			return tea.MouseMsg{X: b.x, Y: b.y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = typeText(t, m, "keep")

			m, _ = update(t, m, tt.msg(m.layout.button))

			assert.Equal(t, "keep", m.room.Input.Value())
		})
	}
}

func TestUpdate_MouseBeforeFirstResize(t *testing.T) {
	m := NewModel(models.DefaultConfig, nil)
	m.room.Input.SetValue("keep")

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, "keep", m.room.Input.Value())
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
