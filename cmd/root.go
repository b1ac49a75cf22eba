package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/kalshictl/config"
	"github.com/s0up4200/kalshictl/kalshi"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *kalshi.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	dryRun     bool
	noConfirm  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kalshictl",
	Short: "A CLI for browsing and trading on Kalshi prediction markets",
	Long: `kalshictl is a command-line client for the Kalshi prediction market
exchange. It covers market data (events, markets, order books, trades)
and portfolio operations (balance, positions, orders), with an
expression-based filter language for narrowing down markets.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			client.Close()
		}
	},
}

// SetVersion sets the version information shown by the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without placing or cancelling orders")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create Kalshi client
	client, err = kalshi.NewClient(
		cfg.Kalshi.EffectiveBaseURL(),
		cfg.Kalshi.APIKey,
		cfg.Kalshi.APISecret,
		logger,
		kalshi.WithTimeout(cfg.Kalshi.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create Kalshi client: %w", err)
	}

	if cfg.Kalshi.DemoMode {
		logger.Info().Msg("Using demo environment")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; disable color when writing to a pipe
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

func centsToDollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
