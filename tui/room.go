package tui

import (
	"unicode/utf8"

	"chat-room/models"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"go.uber.org/zap"
)

// Trigger identifies the control that fired a send.
type Trigger int

const (
	TriggerShortcut Trigger = iota
	TriggerButton
	TriggerMouse
)

func (t Trigger) String() string {
	switch t {
	case TriggerShortcut:
		return "shortcut"
	case TriggerButton:
		return "button"
	case TriggerMouse:
		return "mouse"
	}
	return "unknown"
}

// SendEvent is delivered to OnSendClicked.
type SendEvent struct {
	Trigger Trigger
}

// Room owns the widgets of the chat room. The two lists and the status label
// are display-only: nothing in the room writes to them.
type Room struct {
	Input    textarea.Model
	Members  list.Model
	Messages list.Model
	Status   string

	logger *zap.Logger
}

// NewRoom builds the widgets with empty contents.
func NewRoom(cfg models.Config, logger *zap.Logger) Room {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textarea.New()
	input.Placeholder = cfg.Placeholder
	input.CharLimit = cfg.CharLimit
	input.ShowLineNumbers = false
	input.SetHeight(cfg.InputHeight)
	input.Focus()

	return Room{
		Input:    input,
		Members:  newPane("Members"),
		Messages: newPane("Messages"),
		logger:   logger,
	}
}

func newPane(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = title == "Messages"

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = paneTitleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// Initialize runs once when the view is constructed. It leaves every widget as is.
func (r *Room) Initialize() {
	r.logger.Debug("room initialized",
		zap.Int("members", len(r.Members.Items())),
		zap.Int("messages", len(r.Messages.Items())))
}

// OnSendClicked clears the text input. Nothing else is touched.
func (r *Room) OnSendClicked(event SendEvent) {
	discarded := utf8.RuneCountInString(r.Input.Value())
	r.Input.Reset()
	r.logger.Debug("send triggered",
		zap.Stringer("trigger", event.Trigger),
		zap.Int("discarded_runes", discarded))
}

// Compile-time check that the panes can render the domain items.
var (
	_ list.DefaultItem = models.Member{}
	_ list.DefaultItem = models.Message{}
)
