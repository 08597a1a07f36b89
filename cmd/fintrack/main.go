// fintrack is a terminal client for a hosted expense-tracking API.
//
// Run without arguments to start the interactive interface. Subcommands
// cover the same operations for one-shot scripted use.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fintrack/cmd/fintrack/app"
	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/logging"
	"fintrack/internal/store"
	"fintrack/internal/ux"
)

var (
	verbose bool
	baseURL string
	timeout time.Duration

	// Logger for one-shot commands; the interactive UI logs through the
	// category file logger instead.
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "fintrack - terminal expense tracker",
	Long: `fintrack is a terminal client for a hosted expense-tracking API.

Sign in with your account, browse and add expenses, and review totals
from a summary dashboard.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "fintrack" && cmd.CalledAs() == "fintrack" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (or set FINTRACK_API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout for one-shot commands")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads config and preferences, initializes the file logger and
// builds the API client. clientTimeout zero means wait indefinitely.
func bootstrap(clientTimeout time.Duration) (*config.Config, ux.Preferences, string, *api.Client, error) {
	stateDir, err := config.EnsureStateDir()
	if err != nil {
		return nil, ux.Preferences{}, "", nil, fmt.Errorf("failed to prepare state directory: %w", err)
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, ux.Preferences{}, "", nil, fmt.Errorf("failed to load config: %w", err)
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	if err := logging.Initialize(stateDir); err != nil {
		// Logging is best effort; the client still works without it.
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}

	prefs := ux.Load(stateDir)

	client := api.NewClient(api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: clientTimeout,
	})

	return cfg, prefs, stateDir, client, nil
}

// oneShotClient is bootstrap for non-interactive subcommands.
func oneShotClient() (*config.Config, *api.Client, error) {
	cfg, _, _, client, err := bootstrap(timeout)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, prefs, stateDir, client, err := bootstrap(0)
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	cfgTimeout := cfg.GetAPITimeout()
	if cfgTimeout > 0 {
		client = api.NewClient(api.ClientConfig{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfgTimeout,
		})
	}

	logging.Boot("fintrack starting, base URL %s", client.BaseURL())
	return app.Run(cfg, prefs, stateDir, client, store.New())
}
