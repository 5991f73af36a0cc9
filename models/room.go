package models

import "time"

// Member is one entry of the members pane
type Member struct {
	Name string `json:"name" yaml:"name"`
}

func (m Member) Title() string       { return m.Name }
func (m Member) Description() string { return "" }
func (m Member) FilterValue() string { return m.Name }

// Message is one entry of the messages pane
type Message struct {
	Author string    `json:"author" yaml:"author"`
	Body   string    `json:"body" yaml:"body"`
	SentAt time.Time `json:"sent_at" yaml:"sent_at"`
}

func (m Message) Title() string { return m.Author }

func (m Message) Description() string {
	if m.SentAt.IsZero() {
		return m.Body
	}
	return m.SentAt.Format(time.TimeOnly) + "  " + m.Body
}

func (m Message) FilterValue() string { return m.Body }
