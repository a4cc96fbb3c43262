package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Alia5/keymatrix/internal/configpaths"
	"github.com/Alia5/keymatrix/layout"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
	Path ConfigPath `cmd:"" help:"Print the default configuration file path"`
}

// ConfigInit scaffolds a configuration file holding the global settings.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to keymatrix.<format> in the current directory)" type:"path"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template dynamically via reflection of the settings struct and its tags.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root := flattenKeys(buildMapFromStruct(reflect.TypeOf(Settings{})))

	dest := c.Output
	if dest == "" {
		dest = "keymatrix." + configpaths.Ext(format)
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return err
	}
	if err := writeNew(dest, data, c.Force); err != nil {
		return err
	}
	logger.Info("Config template written", "file", dest, "format", format)
	return nil
}

// ConfigPath prints where keymatrix looks for its per-user config file.
type ConfigPath struct {
	Format string `help:"Config format" enum:"json,yaml,toml" default:"json"`
}

func (c *ConfigPath) Run(con *Console) error {
	p, err := configpaths.DefaultConfigPath(c.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(con.Out, p)
	return err
}

func normalizeFormat(f string) string {
	return layout.NormalizeFormat(f)
}

// buildMapFromStruct mirrors the kong flag tree of t as nested maps keyed by
// config name, holding each flag's default value.
func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := buildMapFromStruct(f.Type)
			if name := strings.TrimSuffix(f.Tag.Get("prefix"), "."); name != "" {
				out[name] = sub
			} else {
				maps.Copy(out, sub)
			}
			continue
		}

		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[configKey(f.Name)] = val
		}
	}
	return out
}

// flattenKeys joins nested sections into dotted keys ("log.level"). The YAML and
// TOML config loaders match a flag by its full name, so prefixed flags must not
// be written as tables.
func flattenKeys(m map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range m {
		sub, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		for sk, sv := range flattenKeys(sub) {
			out[k+"."+sk] = sv
		}
	}
	return out
}

// configKey lower-cases the first rune of a field name, the way kong derives flag names for single words.
func configKey(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToLower(r)) + field[size:]
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
