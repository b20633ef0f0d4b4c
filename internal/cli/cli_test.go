package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/cli"
)

const samplePath = "testdata/sample.txt"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Sample(t *testing.T) {
	out, _, err := run(t, "", "solve", samplePath, "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "regular:")
	require.Contains(t, lines[0], "102")
	require.Contains(t, lines[1], "ultra:")
	require.Contains(t, lines[1], "94")
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, "1111\n", "solve", "-", "--policy", "regular", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "regular:")
	require.Contains(t, out, "3")
	require.NotContains(t, out, "ultra")
}

func TestSolve_StrictUltra(t *testing.T) {
	in := "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n"
	out, _, err := run(t, in, "solve", "-", "-p", "ultra", "--strict", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "71")
}

func TestSolve_Endpoints(t *testing.T) {
	out, _, err := run(t, "12345\n99999\n", "solve", "-", "-p", "regular", "--start", "1,0", "--end", "3,0", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "7")

	_, _, err = run(t, "1\n", "solve", "-", "--start", "nope")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	abs, err := filepath.Abs(samplePath)
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "crucible.toml")
	doc := "input = " + tomlQuote(abs) + "\npolicies = [\"ultra\"]\n[log]\nlevel = \"error\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o600))

	out, _, err := run(t, "", "solve", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "ultra:")
	require.NotContains(t, out, "regular")

	// flags win over the file
	out, _, err = run(t, "", "solve", "--config", cfgPath, "--policy", "regular")
	require.NoError(t, err)
	require.Contains(t, out, "102")
}

func TestSolve_Metrics(t *testing.T) {
	_, errOut, err := run(t, "", "solve", samplePath, "--metrics", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, errOut, `crucible_search_queries_total{policy="regular",result="ok"} 1`)
	require.Contains(t, errOut, `crucible_search_queries_total{policy="ultra",result="ok"} 1`)
	require.Contains(t, errOut, "crucible_search_expanded_states_total")
}

func TestSolve_Verbose(t *testing.T) {
	out, _, err := run(t, "", "solve", samplePath, "-v", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "expanded")
	require.Contains(t, out, "cells")
}

func TestSolve_JSONLogs(t *testing.T) {
	_, errOut, err := run(t, "", "solve", samplePath, "--log-format", "json", "--log-level", "info")
	require.NoError(t, err)
	require.Contains(t, errOut, `"msg":"solving grid"`)
	require.Contains(t, errOut, `"run_id":`)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "123\n45\n", "solve", "-", "--log-level", "error")
	require.ErrorIs(t, err, gridgraph.ErrMalformedGrid)

	_, _, err = run(t, "", "solve")
	require.Error(t, err)

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "solve", samplePath, "--policy", "hover")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "crucible "+cli.Version+"\n", out)
}

func tomlQuote(s string) string {
	// only backslashes need escaping in the paths t.TempDir and filepath.Abs return
	return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
}
