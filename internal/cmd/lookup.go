package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Alia5/keymatrix/keycode"
)

var errUnrecognizedCode = errors.New("unrecognized usage code")

// byCode is the partial code to key mapping. Codes without a named key are
// absent rather than mapped to None, which means "no key pressed".
var byCode = func() map[uint8]keycode.Key {
	m := map[uint8]keycode.Key{}
	for _, k := range keycode.All() {
		m[k.Code()] = k
	}
	return m
}()

func keyForCode(code uint8) (keycode.Key, error) {
	k, ok := byCode[code]
	if !ok {
		return keycode.None, fmt.Errorf("%w: 0x%02x", errUnrecognizedCode, code)
	}
	return k, nil
}

// parseCode reads decimal or 0x-prefixed hex usage codes.
func parseCode(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// Lookup resolves key names to usage codes and usage codes to key names.
type Lookup struct {
	Terms []string `arg:"" name:"term" help:"Key names (PhyA) or usage codes (0x04, 4)"`
}

// Run prints one resolved term per line.
func (c *Lookup) Run(logger *slog.Logger, con *Console) error {
	failed := 0
	for _, term := range c.Terms {
		term = strings.TrimSpace(term)
		if code, ok := parseCode(term); ok {
			k, err := keyForCode(code)
			if err != nil {
				logger.Error("Lookup failed", "term", term, "error", err)
				failed++
				continue
			}
			fmt.Fprintf(con.Out, "0x%02x\t%s\n", code, k)
			continue
		}

		k, err := keycode.Parse(term)
		if err != nil {
			logger.Error("Lookup failed", "term", term, "error", err)
			failed++
			continue
		}
		fmt.Fprintf(con.Out, "%s\t0x%02x\n", k, k.Code())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d terms could not be resolved", failed, len(c.Terms))
	}
	return nil
}
