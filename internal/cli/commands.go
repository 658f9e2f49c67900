package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/internal/config"
)

func (a *app) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Shortest paths on the built-in 9-vertex example graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			format := a.v.GetString(config.KeyFormat)
			if err := config.CheckFormat(format); err != nil {
				return err
			}

			g, err := builder.Textbook()
			if err != nil {
				return err
			}
			res, err := a.solve(g, a.v.GetInt(config.KeySource), a.v.GetBool(config.KeyPath))
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, format)
		},
	}

	fs := cmd.Flags()
	fs.IntP("source", "s", 0, "source vertex")
	fs.StringP("format", "f", config.FormatText, "output format (text, yaml)")
	fs.Bool("path", false, "print the shortest path to every reachable vertex")

	return cmd
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Shortest paths on a graph given by flags, environment or a YAML file",
		Example: `  spgraph run --vertices 3 --edge 0,1,2 --edge 1,2,0.5 --source 0
  spgraph run --config graph.yaml --format yaml --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(a.v, cmd.Flags(), "edge"); err != nil {
				return err
			}
			edges, err := cmd.Flags().GetStringArray("edge")
			if err != nil {
				return err
			}
			run, err := config.Load(a.v, edges)
			if err != nil {
				return err
			}

			g, err := run.Graph()
			if err != nil {
				return err
			}
			res, err := a.solve(g, run.Source, run.Path)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, run.Format)
		},
	}

	fs := cmd.Flags()
	fs.StringP("config", "c", "", "YAML graph file")
	fs.IntP("vertices", "n", 0, "number of vertices V (vertices are 0..V-1)")
	fs.IntP("source", "s", 0, "source vertex")
	fs.StringArrayP("edge", "e", nil, "undirected edge u,v,w (repeatable)")
	fs.StringP("format", "f", config.FormatText, "output format (text, yaml)")
	fs.Bool("path", false, "print the shortest path to every reachable vertex")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print spgraph version",
		Args:  cobra.NoArgs,
		// The version command needs no logger.
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "spgraph:\n Version: %s\n Go version: %s\n OS/Arch: %s/%s\n",
				Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
