package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/zoowalk/config"
)

// isolate keeps run from picking up a config file outside the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestRun_Report(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-attempts", "20000", "-seed", "42", "-verify"}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 2)
	require.Regexp(t, `^Found [1-9][0-9]* unique solutions:$`, lines[0])
	require.Regexp(t, `^Best path was D[A-I]+F with distance [0-9]+ meters\.$`, lines[1])
	for _, l := range lines[2:] {
		require.Regexp(t, `^(Equivalent solution is D[A-I]+F\.|Path: D[A-I]+F distance: [0-9]+ meters\.)$`, l)
	}
}

func TestRun_ZeroAttempts(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-attempts", "0", "-seed", "1"}, &out))
	require.Equal(t, "Found 0 unique solutions:\n", out.String())
}

func TestRun_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attempts: 5000\nmax_visits: 1\nseed: 3\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &out))
	require.Equal(t, "Found 0 unique solutions:\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.Error(t, run(context.Background(), []string{"-workers", "0"}, &out))
	require.ErrorIs(t, run(context.Background(), []string{"-attempts", "-5"}, &out), config.ErrInvalid)
	require.ErrorIs(t, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, &out), os.ErrNotExist)
	require.Error(t, run(context.Background(), []string{"-bogus"}, &out))
	require.Empty(t, out.String())
}

func TestRun_Cancelled(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-attempts", "1000", "-seed", "1"}, &out))
	require.Equal(t, "Found 0 unique solutions:\n", out.String())
}
