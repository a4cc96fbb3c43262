package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/keymatrix/internal/cmd"
	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const macropad = "../../layout/testdata/macropad.yaml"

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func parse(t *testing.T, args []string, options ...kong.Option) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, options...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestDefaults(t *testing.T) {
	cli, ctx := parse(t, []string{"keys"})
	assert.Equal(t, "keys", ctx.Command())
	assert.Equal(t, "info", cli.Log.Level)
	assert.Equal(t, "", cli.Log.File)
	assert.Equal(t, "auto", cli.Color)
}

func TestConfigurationLoaders(t *testing.T) {
	cases := []struct {
		name   string
		loader kong.ConfigurationLoader
		file   string
		body   string
	}{
		{"json nested", kong.JSON, "keymatrix.json", `{"log": {"level": "debug"}, "color": "never"}`},
		{"json dotted", kong.JSON, "keymatrix.json", `{"log.level": "debug", "color": "never"}`},
		{"yaml", kongyaml.Loader, "keymatrix.yaml", "log.level: debug\ncolor: never\n"},
		{"toml", kongtoml.Loader, "keymatrix.toml", "\"log.level\" = \"debug\"\ncolor = \"never\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeConfig(t, tc.file, tc.body)

			cli, _ := parse(t, []string{"keys"}, kong.Configuration(tc.loader, p))
			assert.Equal(t, "debug", cli.Log.Level)
			assert.Equal(t, "never", cli.Color)

			cli, _ = parse(t, []string{"--log.level=warn", "--color=always", "keys"}, kong.Configuration(tc.loader, p))
			assert.Equal(t, "warn", cli.Log.Level)
			assert.Equal(t, "always", cli.Color)
		})
	}
}

func TestMissingConfigIsSkipped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cli, _ := parse(t, []string{"keys"}, kong.Configuration(kongyaml.Loader, missing))
	assert.Equal(t, "info", cli.Log.Level)
}

func TestConfigInitOutputLoads(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loaders := map[string]kong.ConfigurationLoader{
		"json": kong.JSON,
		"yaml": kongyaml.Loader,
		"toml": kongtoml.Loader,
	}
	for format, loader := range loaders {
		t.Run(format, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "keymatrix."+format)
			require.NoError(t, (&cmd.ConfigInit{Format: format, Output: p}).Run(logger))

			cli, _ := parse(t, []string{"keys"}, kong.Configuration(loader, p))
			assert.Equal(t, "info", cli.Log.Level)
			assert.Equal(t, "auto", cli.Color)
		})
	}
}

func TestGenHeaderIsPortable(t *testing.T) {
	_, ctx := parse(t, []string{"gen", macropad})

	abs, err := filepath.Abs(macropad)
	require.NoError(t, err)

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, ctx.Run(logger, &cmd.Console{Out: &out}))

	assert.Contains(t, out.String(), "// Source: "+macropad+"\n")
	assert.NotContains(t, out.String(), abs)
}
