package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/config"
	"github.com/katalvlaran/mlnet/mlio"
)

const rings = "A,0,1\nA,1,2\nA,2,3\nA,3,0\nB,0,1\nB,1,2\nB,2,3\nB,3,0\n"

// execute runs the root command in a clean directory and returns stdout.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T) string {
	t.Helper()
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("rings.csv", []byte(rings), 0o600))
	return "rings.csv"
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "glouvain dev\n", out)
}

func TestDetect_Text(t *testing.T) {
	in := writeInput(t)
	out, logs, err := execute(t, "detect", "--omega", "100", "--log-format", "json", in)
	require.NoError(t, err)
	require.Equal(t, "0\t0 1\n1\t2 3\n# communities=2 levels=3 modularity=0.980392\n", out)
	require.Contains(t, logs, `"run_id"`)
	require.Contains(t, logs, `"message":"glouvain: network loaded"`)
}

func TestDetect_JSONToFileWithMetrics(t *testing.T) {
	in := writeInput(t)
	_, _, err := execute(t, "detect", in,
		"--omega=100", "-f", "json", "-o", "out.json", "--metrics", "metrics.prom", "--log-level", "disabled")
	require.NoError(t, err)

	data, err := os.ReadFile("out.json")
	require.NoError(t, err)
	var doc mlio.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Communities, 2)
	require.Equal(t, 100.0, doc.Omega)
	require.Equal(t, in, doc.Input)
	require.Len(t, doc.RunID, 36)

	prom, err := os.ReadFile(filepath.Join(".", "metrics.prom"))
	require.NoError(t, err)
	require.Contains(t, string(prom), `mlnet_community_runs_total{status="ok"} 1`)
}

func TestDetect_CSVFromConfigFile(t *testing.T) {
	in := writeInput(t)
	require.NoError(t, os.WriteFile("glouvain.yaml", []byte("omega: 100\noutput:\n  format: csv\nlog:\n  level: disabled\ninput:\n  path: "+in+"\n"), 0o600))

	out, _, err := execute(t, "detect", "-c", "glouvain.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "actor,layer,community", lines[0])
	require.Len(t, lines, 9)
}

func TestDetect_Errors(t *testing.T) {
	in := writeInput(t)

	_, _, err := execute(t, "detect", "--log-level", "disabled")
	require.ErrorContains(t, err, "no edge list")

	_, _, err = execute(t, "detect", "--gamma", "0", in)
	require.ErrorContains(t, err, "gamma")

	_, _, err = execute(t, "detect", "--log-level", "disabled", "missing.csv")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "detect", "a.csv", "b.csv")
	require.Error(t, err)
}

func TestDetect_UnusableSeparatorIsAnError(t *testing.T) {
	in := writeInput(t)

	for _, sep := range []string{"#", `"`} {
		var err error
		require.NotPanics(t, func() {
			_, _, err = execute(t, "detect", "--log-level", "disabled", "--separator", sep, in)
		})
		require.ErrorIs(t, err, config.ErrInvalid, "separator %q", sep)
		require.ErrorContains(t, err, "input.separator")
	}

	require.NoError(t, os.WriteFile("bad.yaml", []byte("input:\n  separator: '#'\n"), 0o600))
	require.NotPanics(t, func() {
		_, _, err := execute(t, "detect", "--log-level", "disabled", "-c", "bad.yaml", in)
		require.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestDetect_FlagsOverrideInvalidEnvironment(t *testing.T) {
	in := writeInput(t)
	t.Setenv("MLNET_GAMMA", "0")

	_, _, err := execute(t, "detect", "--log-level", "disabled", in)
	require.ErrorContains(t, err, "gamma")

	out, _, err := execute(t, "detect", "--log-level", "disabled", "--gamma", "1", "--omega", "100", in)
	require.NoError(t, err)
	require.Contains(t, out, "# communities=2 levels=3")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
