// Package cmd implements the drawer CLI commands.
//
// The root command carries the global flags; each subcommand registers
// itself from its own file.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/drawer/internal/telemetry"
	"github.com/go-drift/drawer/pkg/drawer"
	"github.com/go-drift/drawer/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// fullscreenAnnotation marks commands that own the terminal; their logs go
// to a file.
const fullscreenAnnotation = "fullscreen"

// defaultLogFile receives logs of fullscreen commands run with --verbose.
const defaultLogFile = "drawer-debug.log"

// globals holds the root flags and what PersistentPreRunE builds from them.
type globals struct {
	verbose   bool
	configDir string
	logFile   string

	logger      *zap.Logger
	prevHandler errors.ErrorHandler
}

var subcommands []func(*globals) *cobra.Command

// register adds a subcommand constructor to every root built afterwards.
func register(fn func(*globals) *cobra.Command) {
	subcommands = append(subcommands, fn)
}

// NewRootCommand builds the CLI with fresh flag state.
func NewRootCommand() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "drawer",
		Short: "Drawer gesture and snap point engine",
		Long: `drawer resolves snap point geometry, simulates drags against an
in-memory page, renders frames and runs an interactive terminal drawer.

Configuration comes from flags and from presets in drawer.yaml, found in the
project root (the directory holding go.mod) or the directory given by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return g.setup(c)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			g.teardown()
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&g.configDir, "config", "", "directory holding drawer.yaml (default: project root)")
	flags.StringVar(&g.logFile, "log-file", "", "write logs to a file instead of stderr")

	for _, fn := range subcommands {
		sub := fn(g)
		// Post-run hooks are skipped when RunE fails.
		if run := sub.RunE; run != nil {
			sub.RunE = func(c *cobra.Command, args []string) error {
				defer g.teardown()
				return run(c, args)
			}
		}
		root.AddCommand(sub)
	}
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func (g *globals) setup(c *cobra.Command) error {
	file := g.logFile
	if file == "" && g.verbose && c.Annotations[fullscreenAnnotation] == "true" {
		file = defaultLogFile
	}
	logger, err := telemetry.NewLogger(telemetry.LoggerOptions{Verbose: g.verbose, File: file})
	if err != nil {
		return err
	}
	g.logger = logger
	g.prevHandler = errors.SetHandler(errors.NewLogHandler(logger, g.verbose))
	return nil
}

func (g *globals) teardown() {
	if g.logger == nil {
		return
	}
	errors.SetHandler(g.prevHandler)
	_ = g.logger.Sync()
	g.logger = nil
}

func (g *globals) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}

// observer returns a drawer observer that traces drags when an OTLP
// endpoint is configured. The returned func flushes and stops tracing.
func (g *globals) observer(ctx context.Context) (drawer.Observer, func(), error) {
	p, err := telemetry.NewProvider(ctx, "drawer")
	if err != nil {
		return nil, nil, err
	}
	if p.Enabled() {
		g.log().Debug("tracing drags over OTLP")
	}
	obs := telemetry.NewDrawerObserver(ctx, p.Tracer(), g.log())
	return obs, func() {
		if err := p.Shutdown(context.Background()); err != nil {
			g.log().Warn("tracer shutdown", zap.Error(err))
		}
	}, nil
}
