package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlags(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		require.NoError(t, flag.Set(k, v))
	}
	t.Cleanup(func() {
		for k := range kv {
			require.NoError(t, flag.Set(k, flag.Lookup(k).DefValue))
		}
	})
}

func TestRunDumpConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dump", "config.yaml")
	setFlags(t, map[string]string{"dump-config": out})

	assert.Equal(t, 0, run())
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunBadConfigExitCode(t *testing.T) {
	setFlags(t, map[string]string{"config": filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Equal(t, 1, run())
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`logging:
  level: error
  log_file: ""
content:
  path: ""
run:
  headless: true
  duration: 2s
`), 0644))
	setFlags(t, map[string]string{"config": cfg})

	assert.Equal(t, 0, run())
}
