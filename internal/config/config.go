// Package config resolves spgraph run settings from command-line flags,
// SPGRAPH_* environment variables and an optional YAML graph file, in that
// order of precedence.
//
// A graph file looks like:
//
//	vertices: 4
//	source: 0
//	format: yaml
//	path: true
//	edges:
//	  - 0,1,2.5
//	  - 1,2,1
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/core"
)

// EnvPrefix is prepended to every environment key (SPGRAPH_SOURCE, ...).
const EnvPrefix = "SPGRAPH"

// Setting keys. Flag names use '-' where keys use '_'.
const (
	KeyConfig    = "config"
	KeyVertices  = "vertices"
	KeySource    = "source"
	KeyEdges     = "edges"
	KeyFormat    = "format"
	KeyPath      = "path"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Output formats understood by the command layer.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	// ErrConfigFile is returned when the graph file cannot be read or parsed.
	ErrConfigFile = errors.New("config: cannot read graph file")

	// ErrBadEdge is returned for an edge that is not "u,v,w".
	ErrBadEdge = errors.New("config: malformed edge")

	// ErrInvalidSetting is returned for a value outside its allowed range.
	ErrInvalidSetting = errors.New("config: invalid setting")
)

// New returns a viper instance reading SPGRAPH_* variables, with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySource, 0)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyPath, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	return v
}

// BindFlags binds every flag in fs to the key of the same name with '-'
// replaced by '_'. Flags listed in skip are left unbound.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, skip ...string) error {
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || skipped[f.Name] {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("config: bind flag %q: %w", f.Name, bindErr)
		}
	})

	return err
}

// Run holds the settings of one shortest-path run.
type Run struct {
	Vertices int
	Source   int
	Edges    []core.Edge
	Format   string
	Path     bool
}

// Load resolves a Run. Edges given on the command line (flagEdges) replace
// the edges from the environment or graph file.
func Load(v *viper.Viper, flagEdges []string) (*Run, error) {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigFile, file, err)
		}
	}

	r := &Run{
		Vertices: v.GetInt(KeyVertices),
		Source:   v.GetInt(KeySource),
		Format:   strings.ToLower(v.GetString(KeyFormat)),
		Path:     v.GetBool(KeyPath),
	}
	if r.Vertices < 1 {
		return nil, fmt.Errorf("%w: vertices must be positive, got %d", ErrInvalidSetting, r.Vertices)
	}
	if err := CheckFormat(r.Format); err != nil {
		return nil, err
	}

	raw := flagEdges
	if len(raw) == 0 {
		raw = v.GetStringSlice(KeyEdges)
	}
	edges, err := ParseEdges(raw)
	if err != nil {
		return nil, err
	}
	r.Edges = edges

	return r, nil
}

// CheckFormat accepts FormatText and FormatYAML.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidSetting, FormatText, FormatYAML, format)
	}
}

// Graph builds the graph described by r. Range and weight checks are left
// to core.Graph.AddEdge.
func (r *Run) Graph() (*core.Graph, error) {
	return builder.BuildGraph(r.Vertices, nil, builder.EdgeList(r.Edges))
}

// ParseEdges parses every entry with ParseEdge.
func ParseEdges(raw []string) ([]core.Edge, error) {
	edges := make([]core.Edge, 0, len(raw))
	for _, s := range raw {
		e, err := ParseEdge(s)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// ParseEdge parses "u,v,w" where u and v are vertex indices and w is a
// weight accepted by strconv.ParseFloat ("inf" included).
func ParseEdge(s string) (core.Edge, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Edge{}, fmt.Errorf("%w: %q: want u,v,w", ErrBadEdge, s)
	}
	u, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: endpoint u: %v", ErrBadEdge, s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: endpoint v: %v", ErrBadEdge, s, err)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: %q: weight: %v", ErrBadEdge, s, err)
	}

	return core.Edge{U: u, V: v, Weight: w}, nil
}
