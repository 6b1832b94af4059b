package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/funcdemo/intake/pkg/cli/components/teaconsole"
	"github.com/funcdemo/intake/pkg/config"
	"github.com/funcdemo/intake/pkg/console"
	"github.com/funcdemo/intake/pkg/demo"
	"github.com/funcdemo/intake/pkg/internal/errorhelpers"
	"github.com/funcdemo/intake/pkg/question"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type demoParams struct {
	configPath   string
	styles       []string
	withGenerics bool
	ui           uiMode
	logFile      string
	verbosity    int
}

func (p *demoParams) addFlagsTo(cmd *cobra.Command) {
	p.ui = config.UIPlain

	cmd.Flags().StringVar(&p.configPath, "config", "", fmt.Sprintf("path to a config file (default %s, if present)", config.DefaultPath()))
	cmd.Flags().StringSliceVar(&p.styles, "styles", nil, fmt.Sprintf("composition styles to run, in order (default %s)", strings.Join(demo.StyleNames(demo.DefaultStyles()), ",")))
	cmd.Flags().BoolVar(&p.withGenerics, "with-generics", false, "also run the generic function style")
	cmd.Flags().Var(&p.ui, "ui", fmt.Sprintf("console to use (%s)", strings.Join(config.UIModes, ", ")))
	cmd.Flags().StringVar(&p.logFile, "log-file", "", "also write JSON logs to this file")
	addVerboseFlag(&p.verbosity, cmd)
}

// settings loads the config file and applies any flags the user set on top.
func (p *demoParams) settings(flags *pflag.FlagSet) (config.Config, error) {
	known := demo.StyleNames(demo.Styles())

	cfg, err := config.Load(p.configPath, known)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("styles") {
		cfg.Styles = lo.Uniq(lo.Map(p.styles, func(s string, _ int) string {
			return strings.ToLower(strings.TrimSpace(s))
		}))
	}
	if flags.Changed("with-generics") {
		cfg.WithGenerics = p.withGenerics
	}
	if flags.Changed("ui") {
		cfg.UI = string(p.ui)
	}
	if flags.Changed("log-file") {
		cfg.LogFile = p.logFile
	}

	if err := cfg.Validate(known); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (p *demoParams) run(cmd *cobra.Command) error {
	cfg, err := p.settings(cmd.Flags())
	if err != nil {
		return err
	}

	var extra []slog.Handler
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		extra = append(extra, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger := clog.NewLogger(newLogger(p.verbosity, extra...)).With("session", uuid.NewString())
	ctx := clog.WithLogger(cmd.Context(), logger)

	styles := selectStyles(cfg)
	logger.Info("starting", "styles", demo.StyleNames(styles), "ui", cfg.UI)

	con := newConsole(cfg.UI, cmd.InOrStdin(), cmd.OutOrStdout())
	result, err := demo.New(con, demo.WithStyles(styles...)).Run(ctx)
	if err != nil {
		if style, ok := errorhelpers.LabelOf(err); ok {
			logger.Warn("round failed", "style", style)
		}
		if errors.Is(err, question.ErrInputClosed) {
			return fmt.Errorf("input ended before every question was answered: %w", err)
		}
		return err
	}

	logger.Info("done", "role", result.Role, "rounds", len(result.Rounds))
	return nil
}

// selectStyles turns the configured style names into styles. Names are
// validated by config, so unknown ones can't appear here.
func selectStyles(cfg config.Config) []demo.Style {
	styles := demo.DefaultStyles()
	if len(cfg.Styles) > 0 {
		styles = lo.FilterMap(cfg.Styles, func(name string, _ int) (demo.Style, bool) {
			return demo.StyleByName(name)
		})
	}

	if cfg.WithGenerics && !lo.Contains(demo.StyleNames(styles), demo.Generic.Name) {
		styles = append(styles, demo.Generic)
	}
	return styles
}

func newConsole(ui string, in io.Reader, out io.Writer) question.Console {
	switch ui {
	case config.UIFancy:
		return teaconsole.New(in, out)
	case config.UIAuto:
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return teaconsole.New(in, out)
		}
	}
	return console.New(in, out)
}

// uiMode is a pflag.Value that only accepts the known UI modes.
type uiMode string

var _ pflag.Value = (*uiMode)(nil)

func (m *uiMode) String() string {
	return string(*m)
}

func (m *uiMode) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !lo.Contains(config.UIModes, s) {
		return fmt.Errorf("must be one of %s", strings.Join(config.UIModes, ", "))
	}
	*m = uiMode(s)
	return nil
}

func (m *uiMode) Type() string {
	return "mode"
}
