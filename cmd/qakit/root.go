package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qakit/pkg/logger"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

// app holds state shared by all commands of one invocation.
type app struct {
	logFormat string
	logLevel  string

	writer *logger.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "qakit",
		Short: "Validate test data and write categorized test logs",
		Long: `qakit runs the field and record validators used by test suites and
reports the outcome as one categorized log line.

Logging is configured from LOG_LEVEL, LOG_FORMAT, APP_ENV, SERVICE_NAME,
LOG_TRUNCATE_LIMIT, LOG_SENSITIVE_KEYS and LOG_RUN_ID, or a .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides LOG_FORMAT)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "minimum log level (overrides LOG_LEVEL)")

	root.AddCommand(newValidateCmd(a), newVersionCmd())
	return root
}

// setup builds the logger from the environment and flags. Records below
// error level go to the command's stdout and errors to its stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := logger.LoadConfig()
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Format = a.logFormat
	}
	if a.logLevel != "" {
		cfg.Level = a.logLevel
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts,
		logger.WithOutput(cmd.OutOrStdout()),
		logger.WithErrorOutput(cmd.ErrOrStderr()),
	)

	log := logger.New(opts...)
	logger.SetAsDefault(log)
	a.writer = logger.NewWriter(log)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "qakit v%s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		},
	}
}
