package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const scenePath = "../../scene/testdata/columns.yaml"

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "(1,2,3) set=false, (2,3,4) = 150")
	assert.Contains(t, out, "south (4,0,6) => 37")
	assert.NotContains(t, out, "south (4,-1,6)")
	assert.Contains(t, out, "stairs (4,3,5) => 13")
	assert.Contains(t, out, "stairs (4,0,5) => 23")
	assert.Contains(t, out, "22 found at (4,1,5)")
}

func TestGet(t *testing.T) {
	out, err := run(t, "get", "--scene", scenePath, "4,2,5", "(9,9,9)")
	require.NoError(t, err)
	assert.Equal(t, "(4,2,5) 21\n(9,9,9) empty\n", out)

	_, err = run(t, "get", "--scene", scenePath, "nope")
	require.Error(t, err)

	_, err = run(t, "get", "4,2,5")
	require.Error(t, err, "--scene is required")
}

func TestWalk(t *testing.T) {
	out, err := run(t, "walk", "--scene", scenePath, "--from", "4,3,6", "--dir", "south")
	require.NoError(t, err)
	assert.Equal(t, "(4,3,6) 40\n(4,2,6) 39\n(4,1,6) 38\n(4,0,6) 37\n", out)

	out, err = run(t, "walk", "--scene", scenePath, "--from", "4,3,6", "--dir", "south", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	out, err = run(t, "walk", "--scene", scenePath, "--name", "staircase")
	require.NoError(t, err)
	assert.Equal(t, "(4,3,6) 40\n(4,3,5) 13\n(4,2,5) 21\n(4,1,5) 22\n(4,0,5) 23\n", out)

	_, err = run(t, "walk", "--scene", scenePath, "--dir", "sideways")
	require.Error(t, err)
}

func TestFill_WithMetrics(t *testing.T) {
	out, err := run(t, "fill", "--size", "6", "--reserve", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "filled 216 cells")
	assert.Contains(t, out, `graphmat_leaders{store="fill"} 27`)
	assert.Contains(t, out, `graphmat_nodes{store="fill"} 216`)

	_, err = run(t, "fill", "--size", "0")
	require.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "demo")
	require.Error(t, err)
}
