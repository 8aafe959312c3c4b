package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eLbARROS13/OH-Toolkit/cmd/ohtk/internal"
	"github.com/eLbARROS13/OH-Toolkit/internal/config"
	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
)

const defaultConfigFile = "ohtk.yaml"

// Loaded once by loadConfig and shared by all subcommands.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ohtk",
	Short: "OH-Toolkit - query engine for nested health profiles",
	Long: `OH-Toolkit loads directories of nested JSON health profiles and
extracts tabular data from them with dot-delimited value paths,
wildcard expansion, and declarative extraction recipes.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig is called before any command runs to load configuration
func loadConfig(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	// Config loading is pointless for commands that never touch data.
	if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
		cfg = config.DefaultConfig()
		logger = slog.Default()
		return nil
	}

	configFile := flags.ConfigFile
	if configFile == "" {
		configFile = os.Getenv("OHTK_CONFIG")
	}
	if configFile == "" {
		configFile = defaultConfigFile
	}

	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Verbose {
		cfg.Log.Level = "debug"
	}
	if flags.Quiet {
		cfg.Log.Level = "warn"
	}

	logger = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// loadProfiles loads the configured profile directory for data commands.
func loadProfiles(ctx context.Context) (*profile.Set, error) {
	if cfg.DataDir == "" {
		return nil, internal.NewCLIError(internal.ExitConfigError,
			"no profile directory configured (set data_dir in config or pass --data-dir)")
	}
	return profile.LoadContext(ctx, cfg.DataDir, logger)
}

// isTerminalInteractive checks if stdout is a terminal.
func isTerminalInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(versionCmd)
}
