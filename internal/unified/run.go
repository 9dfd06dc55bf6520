package unified

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jizpi-library/fondctl/internal/config"
	"github.com/jizpi-library/fondctl/internal/store"
)

// Run launches the full-screen application and blocks until it exits.
func Run(cfg *config.Config, st *store.Store, log *zap.Logger, sessPath string) error {
	m, err := New(cfg, st, log, sessPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
