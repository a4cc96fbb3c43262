package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	cases := map[string]int{
		"/tmp/custom.json": 0,
		"/tmp/custom.yml":  1,
		"/tmp/custom.toml": 2,
		"/tmp/custom.conf": 0,
	}
	for userPath, which := range cases {
		j, y, tm := ConfigCandidatePaths(userPath)
		lists := [][]string{j, y, tm}
		require.NotEmpty(t, lists[which], userPath)
		assert.Equal(t, userPath, lists[which][0], userPath)
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/tester")

	j, y, tm := ConfigCandidatePaths("")
	if runtime.GOOS != "windows" {
		assert.Contains(t, j, filepath.Join("/xdg", "keymatrix", "config.json"))
		assert.Contains(t, y, filepath.Join("/etc", "keymatrix", "config.yml"))
		assert.Contains(t, tm, filepath.Join("/etc", "keymatrix", "config.toml"))
	}
	assert.Len(t, y, 2*len(j))
	assert.Len(t, tm, len(j))
}

func TestDefaultConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG layout")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	p, err := DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "keymatrix", "config.yaml"), p)

	p, err = DefaultConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "keymatrix", "config.json"), p)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureDir(filepath.Join(dir, "a", "b", "config.toml")))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
}
