package tui

import (
	"github.com/jizpi-library/fondctl/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode.
// TUI mode is enabled when:
// - stdout is a TTY (not piped or redirected)
// - --no-interactive flag is not set
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}

	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
