package tui

import (
	"fmt"

	"chat-room/models"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the TUI application
func Run(cfg models.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := NewModel(cfg, logger)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)

	logger.Info("starting chat room", zap.String("title", cfg.Title))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if finalModel, ok := finalModel.(Model); ok {
		room := finalModel.Room()
		logger.Info("chat room closed",
			zap.Int("members", len(room.Members.Items())),
			zap.Int("messages", len(room.Messages.Items())))
	}

	return nil
}
