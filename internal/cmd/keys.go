package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/Alia5/keymatrix/keycode"
)

// Keys lists the named usage codes.
type Keys struct {
	Group  string `help:"Only list keys of this group" enum:"all,reserved,error,letter,digit,control,punctuation,function,navigation,keypad,editing,media,international,legacy,modifier" default:"all"`
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

type keyEntry struct {
	Code  uint8         `json:"code"`
	Hex   string        `json:"hex"`
	Name  keycode.Key   `json:"name"`
	Group keycode.Group `json:"group"`
}

// Run prints the keycode table.
func (c *Keys) Run(logger *slog.Logger, con *Console) error {
	var entries []keyEntry
	for _, k := range keycode.All() {
		if c.Group != "" && c.Group != "all" && keycode.Group(c.Group) != k.Group() {
			continue
		}
		entries = append(entries, keyEntry{
			Code:  k.Code(),
			Hex:   fmt.Sprintf("0x%02x", k.Code()),
			Name:  k,
			Group: k.Group(),
		})
	}
	logger.Debug("Listing keys", "group", c.Group, "count", len(entries))

	if c.Format == "json" {
		enc := json.NewEncoder(con.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(con.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tGROUP")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Hex, e.Name, e.Group)
	}
	return tw.Flush()
}
