package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jizpi-library/fondctl/internal/config"
	"github.com/jizpi-library/fondctl/internal/logging"
	"github.com/jizpi-library/fondctl/internal/session"
	"github.com/jizpi-library/fondctl/internal/store"
	"github.com/jizpi-library/fondctl/internal/tui"
	"github.com/jizpi-library/fondctl/internal/unified"
	"github.com/jizpi-library/fondctl/internal/util"
)

var (
	cfg      *config.Config
	st       *store.Store
	logger   *zap.Logger
	sessPath string

	appVersion = "dev"

	flagVerbose       bool
	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

// SetVersion records the build version injected from main.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "fondctl",
	Short: "Manage an institute's electronic library fund from the terminal",
	Long: `fondctl manages the electronic literature fund of an institute:
books per department, literature categories, staff activity, and
print-ready reports.

Records live as YAML documents in a local data directory and every
running instance observes changes made by others.

Run 'fondctl' with no arguments to launch the interactive application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return unified.Run(cfg, st, logger, sessPath)
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/fondctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("FONDCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := util.EnsureDir(cfg.Defaults.DataDir); err != nil {
			return fmt.Errorf("preparing data dir: %w", err)
		}

		logger, err = logging.New(cfg.Defaults.LogFile, flagVerbose)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}

		st, err = store.Open(cfg.Defaults.DataDir, logger)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}

		sessPath = session.DefaultPath()
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newExportCmd(),
		newActCmd(),
		newStatsCmd(),
		newStaffCmd(),
		newCategoriesCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newVersionCmd(),
	)
}
