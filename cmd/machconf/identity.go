package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djbozjr/machconf"
	"github.com/djbozjr/machconf/cmd/machconf/ui"
)

func newIdentityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Show the identity facets resolved for this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := machconf.CurrentIdentity()
			pairs := make([]ui.Pair, 0, 3)
			for _, kind := range []machconf.FacetKind{machconf.KindName, machconf.KindType, machconf.KindUser} {
				f := id.Facet(kind)
				value := f.Value
				if value == "" {
					value = ui.Muted("(undetermined)")
				} else if f.Raw != f.Value {
					value += " " + ui.Muted("(from "+f.Raw+")")
				}
				pairs = append(pairs, ui.KV(kind.String(), value))
			}
			fmt.Print(ui.KeyValues("", pairs...))
			return nil
		},
	}
}
