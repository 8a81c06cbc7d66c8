// Command remix renders remixes of an analysed track.
//
// Usage:
//
//	remix list
//	remix info --analysis track.json
//	remix run --analysis track.json --audio track.wav --program one --out one.wav
//	remix run --analysis track.json --audio track.wav --dsl downbeats.yaml --out out.wav
//	remix run --analysis track.json --audio track.wav --program cluster-walk --clusters 8 --seed 1 --out walk.wav
//
// Without --out, run prints the spans of the remix instead of rendering them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	logger   *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "remix",
		Short:         "Render remixes from track analyses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newListCmd(), newInfoCmd(a), newRunCmd(a))

	return root
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
