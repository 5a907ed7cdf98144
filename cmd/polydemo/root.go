package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-realpoly/internal/demo"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "polydemo",
	Short: "Demonstrate real-coefficient polynomial arithmetic",
	Long: `polydemo builds two sample polynomials and prints their sum, difference,
scalar products, coefficient access, point evaluation, conversions,
equality checks and zero checks.

Samples default to p1 = [1, 2, 3] and p2 = [0, 1, 1] (lowest power first)
and can be overridden with a YAML file:

  p1: [1, 2, 3]
  p2: [0, 1, 1]
  factor: 2
  left_factor: 3
  offset: 5
  power: 2
  point: 2
  literal: 7`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "YAML file with sample inputs")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), logLevel)

	cfg, err := demo.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	logger.Debug("loaded config", "path", cfgFile)

	return demo.Run(cmd.OutOrStdout(), cfg, logger)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
