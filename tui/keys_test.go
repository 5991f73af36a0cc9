package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_PressHelpListsEveryKey(t *testing.T) {
	k := newKeyMap()

	assert.Equal(t, "enter/space", k.Press.Help().Key)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Press))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.Press))
	assert.Contains(t, k.FullHelp()[0], k.Press)
}
