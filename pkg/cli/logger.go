package cli

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

func addVerboseFlag(verbosity *int, cmd *cobra.Command) {
	cmd.Flags().CountVarP(verbosity, "verbose", "v", "logging verbosity (v = info, vv = debug)")
}

func logLevel(verbosity int) charmlog.Level {
	switch {
	case verbosity >= 2:
		return charmlog.DebugLevel
	case verbosity == 1:
		return charmlog.InfoLevel
	default:
		return charmlog.WarnLevel
	}
}

// newLogger returns a logger writing to stderr at the level given by
// verbosity. Any extra handlers receive every record as well.
func newLogger(verbosity int, extra ...slog.Handler) *slog.Logger {
	terminal := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Level:           logLevel(verbosity),
	})

	if len(extra) == 0 {
		return slog.New(terminal)
	}
	return slog.New(slogmulti.Fanout(append([]slog.Handler{terminal}, extra...)...))
}
