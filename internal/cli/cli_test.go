package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/internal/cli"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args []string, opts ...cli.Option) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(opts...)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestDemo_Text(t *testing.T) {
	out, _, err := execute(t, []string{"demo"})
	require.NoError(t, err)

	want := []string{
		"0 -> 0: 0",
		"0 -> 1: 4",
		"0 -> 2: 12",
		"0 -> 3: 19",
		"0 -> 4: 21",
		"0 -> 5: 11",
		"0 -> 6: 9",
		"0 -> 7: 8",
		"0 -> 8: 14",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestDemo_SourceAndPath(t *testing.T) {
	out, _, err := execute(t, []string{"demo", "--source", "4", "--path"})
	require.NoError(t, err)
	assert.Contains(t, out, "4 -> 4: 0 path=4\n")
	assert.Contains(t, out, "4 -> 0: 21 path=4-5-6-7-0\n")
}

func TestDemo_YAML(t *testing.T) {
	out, _, err := execute(t, []string{"demo", "-f", "yaml"})
	require.NoError(t, err)

	var doc struct {
		Source    int `yaml:"source"`
		Vertices  int `yaml:"vertices"`
		Distances []struct {
			Vertex   int     `yaml:"vertex"`
			Distance float64 `yaml:"distance"`
		} `yaml:"distances"`
		Stats map[string]int `yaml:"stats"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 0, doc.Source)
	assert.Equal(t, 9, doc.Vertices)
	require.Len(t, doc.Distances, 9)
	assert.Equal(t, 21.0, doc.Distances[4].Distance)
	assert.Equal(t, doc.Stats["pops"], doc.Stats["pushes"])
}

func TestDemo_BadSource(t *testing.T) {
	_, _, err := execute(t, []string{"demo", "--source", "9"})
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestRun_FlagsUnreachable(t *testing.T) {
	out, _, err := execute(t, []string{"run",
		"--vertices", "4", "--edge", "0,1,2.5", "--edge", "2,3,1"})
	require.NoError(t, err)
	assert.Equal(t, "0 -> 0: 0\n0 -> 1: 2.5\n0 -> 2: inf\n0 -> 3: inf\n", out)
}

func TestRun_YAMLInfinity(t *testing.T) {
	out, _, err := execute(t, []string{"run", "-n", "2", "-f", "yaml"})
	require.NoError(t, err)
	assert.Contains(t, out, "distance: .inf")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	body := "vertices: 3\nsource: 2\npath: true\nedges:\n  - 0,1,1\n  - 1,2,1\n  - 0,2,5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, _, err := execute(t, []string{"run", "--config", path})
	require.NoError(t, err)
	assert.Equal(t, "2 -> 0: 2 path=2-1-0\n2 -> 1: 1 path=2-1\n2 -> 2: 0 path=2\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, []string{"run", "--vertices", "2", "--edge", "0,1,-1"})
	assert.ErrorIs(t, err, core.ErrInvalidWeight)

	_, _, err = execute(t, []string{"run", "--vertices", "2", "--source", "2"})
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, _, err = execute(t, []string{"run"})
	assert.Error(t, err)

	_, _, err = execute(t, []string{"demo", "--log-format", "xml"})
	assert.Error(t, err)
}

func TestHooksAreLogged(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	_, _, err := execute(t, []string{"run", "-n", "3", "-e", "0,1,1", "-e", "1,2,1"},
		cli.WithLogger(zap.New(zc)))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("vertex settled").Len())
	assert.Equal(t, 2, logs.FilterMessage("edge relaxed").Len())

	done := logs.FilterMessage("shortest paths computed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.EqualValues(t, 0, fields["source"])
	assert.EqualValues(t, 3, fields["vertices"])
	assert.EqualValues(t, 0, fields["stale_skips"])
}

func TestLogFlags(t *testing.T) {
	_, errOut, err := execute(t, []string{"demo", "--log-format", "json", "--log-level", "debug"})
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"vertex settled"`)
	assert.Contains(t, errOut, `"name":"spgraph"`)

	_, errOut, err = execute(t, []string{"demo", "--log-level", "warn"})
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, []string{"version"})
	require.NoError(t, err)
	assert.Contains(t, out, "Version: "+cli.Version)
}
