package tui

import (
	"chat-room/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Focus is the control that receives key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusButton
)

// Model represents the main TUI model
type Model struct {
	room  Room
	focus Focus

	title             string
	memberPanePercent int
	inputHeight       int

	width  int
	height int
	layout layout

	keys keyMap
	help help.Model
}

// NewModel creates a new TUI model
func NewModel(cfg models.Config, logger *zap.Logger) Model {
	return Model{
		room:              NewRoom(cfg, logger),
		focus:             FocusInput,
		title:             cfg.Title,
		memberPanePercent: cfg.MemberPanePercent,
		inputHeight:       cfg.InputHeight,
		keys:              newKeyMap(),
		help:              help.New(),
	}
}

// Room exposes the composition root, mainly for callers that inspect state
// after the program exits.
func (m Model) Room() Room {
	return m.room
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	m.room.Initialize()
	return tea.Batch(
		textarea.Blink,
		tea.SetWindowTitle(m.title),
	)
}
