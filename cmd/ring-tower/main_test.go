package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ring-tower/config"
)

func TestRunSolve(t *testing.T) {
	for n := 1; n <= 8; n++ {
		cfg := config.Default()
		cfg.Rings = n

		var out bytes.Buffer
		require.NoError(t, runSolve(&out, cfg), "rings=%d", n)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		minimal := 1<<n - 1
		require.Len(t, lines, minimal+1)
		assert.Contains(t, lines[len(lines)-1], "minimum")
	}
}

func TestRunSolve_Listing(t *testing.T) {
	cfg := config.Default()
	cfg.Rings = 2

	var out bytes.Buffer
	require.NoError(t, runSolve(&out, cfg))
	want := "   1. ring 1  B -> C\n" +
		"   2. ring 2  B -> A\n" +
		"   3. ring 1  C -> A\n" +
		"solved in 3 moves (minimum 3)\n"
	assert.Equal(t, want, out.String())
}

func TestSolveCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"solve", "--rings", "4"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "solved in 15 moves (minimum 15)")
}

func TestSolveCommand_InvalidRings(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"solve", "--rings", "12"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rings 12")
}

func TestSolveCommand_ConfigFile(t *testing.T) {
	path := t.TempDir() + "/ring-tower.yaml"
	require.NoError(t, writeFile(path, "rings: 3\n"))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"solve", "--config", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "solved in 7 moves")
}

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body), 0o644)
}
