package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spiral/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
	envFile  string
	json     bool
}

// Resolved in PersistentPreRunE for every subcommand.
var (
	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "spiral",
	Short: "Print grid values in spiral order",
	Long: "Spiral walks rectangular integer grids clockwise from the top-left cell,\n" +
		"shrinking inward one side at a time, and prints the visited values.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $SPIRAL_LOG_LEVEL or info)")
	f.StringVar(&rootFlags.envFile, "env-file", "", "Env file to load (default: .env)")
	f.BoolVar(&rootFlags.json, "json", false, "Write results as JSON lines")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.Version = version
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if rootFlags.envFile != "" {
		files = append(files, rootFlags.envFile)
	}
	c, err := config.Load(files...)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		if c.LogLevel, err = config.ParseLevel(rootFlags.logLevel); err != nil {
			return err
		}
	}
	cfg = c
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))

	return nil
}

// result is one traversed grid as written by --json.
type result struct {
	Name   string `json:"name"`
	Grid   string `json:"grid"`
	Spiral []int  `json:"spiral"`
}

// writeResult prints r either as a JSON line or as a header line followed
// by the space-separated values.
func writeResult(w io.Writer, r result) error {
	if rootFlags.json {
		return json.NewEncoder(w).Encode(r)
	}
	vals := make([]string, len(r.Spiral))
	for i, v := range r.Spiral {
		vals[i] = fmt.Sprint(v)
	}
	_, err := fmt.Fprintf(w, "%s %s\n%s\n", r.Name, r.Grid, strings.Join(vals, " "))

	return err
}
