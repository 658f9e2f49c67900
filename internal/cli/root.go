// Package cli implements the spgraph command tree.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/spgraph/internal/config"
	"github.com/katalvlaran/spgraph/internal/logging"
)

// Version is reported by "spgraph version". Release builds override it with
// -ldflags "-X github.com/katalvlaran/spgraph/internal/cli.Version=...".
var Version = "dev"

// Option customises the command tree built by NewRootCommand.
type Option func(*app)

// WithLogger makes every command log to l instead of building a logger from
// --log-level and --log-format.
func WithLogger(l *zap.Logger) Option {
	return func(a *app) {
		if l != nil {
			a.log = l
			a.fixedLog = true
		}
	}
}

// app is the state shared by the commands of one tree.
type app struct {
	v        *viper.Viper
	log      *zap.Logger
	fixedLog bool
}

// NewRootCommand returns the "spgraph" command with all subcommands attached.
// Each call owns a fresh viper instance, so trees do not share settings.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{v: config.New(), log: logging.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "spgraph",
		Short: "Single-source shortest paths on weighted undirected graphs",
		Long: `spgraph runs Dijkstra's algorithm from one source vertex over a weighted
undirected graph whose vertices are 0..V-1 and prints the distance to every
vertex. Settings come from flags, SPGRAPH_* environment variables or a YAML
graph file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogger,
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", logging.FormatConsole, "log format (console, json, logfmt)")
	// Binding only fails for a nil flag, which cannot happen here.
	_ = config.BindFlags(a.v, pf)

	root.AddCommand(a.demoCmd(), a.runCmd(), versionCmd())

	return root
}

func (a *app) setupLogger(cmd *cobra.Command, _ []string) error {
	if a.fixedLog {
		return nil
	}
	l, err := logging.New(logging.Config{
		Level:  a.v.GetString(config.KeyLogLevel),
		Format: a.v.GetString(config.KeyLogFormat),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = l

	return nil
}
