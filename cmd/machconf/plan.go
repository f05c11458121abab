package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/djbozjr/machconf"
	"github.com/djbozjr/machconf/cmd/machconf/ui"
	"github.com/djbozjr/machconf/config"
)

func newPlanCmd() *cobra.Command {
	var (
		directory string
		order     []string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the candidate files a load pass would try, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if directory != "" {
				cfg.Directory = directory
			}
			if len(order) > 0 {
				cfg.Order = order
			}
			ord, err := cfg.PrecedenceOrder()
			if err != nil {
				return err
			}

			dir := cfg.MachineDirectory()
			tiers := machconf.Plan(machconf.CurrentIdentity(), ord)
			rows := make([][]string, 0, len(tiers)*2)
			for _, tier := range tiers {
				for i, candidate := range tier.Candidates {
					form := "composite"
					if i == 1 {
						form = "bare"
					}
					rows = append(rows, []string{tier.Kind.String(), form, filepath.Join(dir, candidate)})
				}
			}
			fmt.Println(ui.Table([]string{"FACET", "FORM", "CANDIDATE"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory holding machine files")
	cmd.Flags().StringSliceVar(&order, "order", nil, "Facet precedence order, e.g. type,name,user")
	return cmd
}
