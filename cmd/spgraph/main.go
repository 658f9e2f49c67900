// Command spgraph computes single-source shortest paths with Dijkstra's
// algorithm. Run "spgraph --help" for usage.
package main

import (
	"os"

	"github.com/katalvlaran/spgraph/internal/cli"
)

func main() {
	// On failure cobra prints the error, so only the exit status is left.
	if cli.NewRootCommand().Execute() != nil {
		os.Exit(1)
	}
}
