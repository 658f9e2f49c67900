package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/spgraph/dijkstra"
	"github.com/katalvlaran/spgraph/internal/config"
)

// report is the YAML document printed with --format yaml.
// yaml.v2 renders +Inf as .inf.
type report struct {
	Source    int            `yaml:"source"`
	Vertices  int            `yaml:"vertices"`
	Distances []distanceLine `yaml:"distances"`
	Stats     statsReport    `yaml:"stats"`
}

type distanceLine struct {
	Vertex   int     `yaml:"vertex"`
	Distance float64 `yaml:"distance"`
	Path     []int   `yaml:"path,flow,omitempty"`
}

type statsReport struct {
	Pushes      int `yaml:"pushes"`
	Pops        int `yaml:"pops"`
	StaleSkips  int `yaml:"stale_skips"`
	Relaxations int `yaml:"relaxations"`
}

// writeResult renders res to w in the given format. Paths are included when
// res carries predecessors.
func writeResult(w io.Writer, res *dijkstra.Result, format string) error {
	switch format {
	case config.FormatYAML:
		return writeYAML(w, res)
	default:
		return writeText(w, res)
	}
}

// writeText prints one "s -> v: d" line per vertex, "inf" when unreachable.
func writeText(w io.Writer, res *dijkstra.Result) error {
	for v, d := range res.Dist {
		line := fmt.Sprintf("%d -> %d: %s", res.Source, v, formatDistance(d))
		if path, err := res.PathTo(v); err == nil {
			line += " path=" + joinPath(path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(w io.Writer, res *dijkstra.Result) error {
	doc := report{
		Source:    res.Source,
		Vertices:  len(res.Dist),
		Distances: make([]distanceLine, len(res.Dist)),
		Stats: statsReport{
			Pushes:      res.Stats.Pushes,
			Pops:        res.Stats.Pops,
			StaleSkips:  res.Stats.StaleSkips,
			Relaxations: res.Stats.Relaxations,
		},
	}
	for v, d := range res.Dist {
		doc.Distances[v] = distanceLine{Vertex: v, Distance: d}
		if path, err := res.PathTo(v); err == nil {
			doc.Distances[v].Path = path
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cli: encode yaml: %w", err)
	}
	_, err = w.Write(out)

	return err
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, "-")
}
