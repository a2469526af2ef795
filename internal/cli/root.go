package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// Global flags
var (
	flagEnvFile string
	flagVerbose bool
)

// getenv is the environment lookup handed to config.Load.
var getenv = os.Getenv

// logger is built by the root command before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "prreview",
	Short: "AI review of GitHub pull requests",
	Long: "prreview fetches a pull request's changes, asks an LLM provider (OpenAI or DeepSeek) " +
		"for a review, and appends the review to the pull request description.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(flagEnvFile, cmd.Flags().Changed("env-file")); err != nil {
			return err
		}
		logger = newLogger(cmd.ErrOrStderr(), flagVerbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Run executes the root command and returns an exit code.
func Run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode = ExitSuccess
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// fail reports err on stderr and marks the run as failed. Handlers return its
// result so cobra does not treat a runtime failure as a usage error.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = ExitFailure
	return nil
}

// usage reports a bad argument that cobra's own validation cannot catch.
func usage(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = ExitUsageError
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print prreview version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "prreview version %s\n", version)
	},
}
