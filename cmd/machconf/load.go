package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/djbozjr/machconf"
	"github.com/djbozjr/machconf/cmd/machconf/ui"
	"github.com/djbozjr/machconf/config"
	"github.com/djbozjr/machconf/loaders/settingsfile"
	"github.com/djbozjr/machconf/settings"
)

// hostSettings are the stock settings a machine file can override.
type hostSettings struct {
	FontFamily string `machconf:"key:font.family default:monospace doc:'Editor font family'"`
	FontHeight int    `machconf:"key:font.height default:120 doc:'Font height in tenths of a point'"`
	Theme      string `machconf:"key:theme doc:'Color theme selected by machine files'"`
}

func newHostRegistry() (*settings.Registry, *hostSettings, error) {
	host := &hostSettings{}
	reg := settings.NewRegistry()
	if err := reg.Bind(host); err != nil {
		return nil, nil, err
	}
	return reg, host, nil
}

func newLoadCmd() *cobra.Command {
	var (
		directory string
		order     []string
		severity  string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Resolve this machine's identity and load its settings files",
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
			if severity != "" {
				cfg.Severity = severity
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}

			sev, err := cfg.LoadSeverity()
			if err != nil {
				return err
			}
			ord, err := cfg.PrecedenceOrder()
			if err != nil {
				return err
			}

			reg, host, err := newHostRegistry()
			if err != nil {
				return err
			}
			var fileOpts []settingsfile.Option
			if cfg.Verbose {
				fileOpts = append(fileOpts, settingsfile.WithProgress(slog.Default()))
			}
			files, err := settingsfile.New(reg, fileOpts...)
			if err != nil {
				return err
			}

			loader := machconf.New(
				machconf.WithDirectory(cfg.MachineDirectory()),
				machconf.WithOrder(ord),
				machconf.WithSeverity(sev),
				machconf.WithFileLoader(files),
				machconf.WithLogger(slog.Default()),
				machconf.WithReporter(func(message string) {
					fmt.Fprintln(os.Stderr, ui.WarnMsg("%s", message))
				}),
			)
			res, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, f := range res.Loaded {
				fmt.Println(ui.SuccessMsg("%s %s", f.Path, ui.Muted("("+f.Kind.String()+")")))
			}
			if len(res.Loaded) == 0 {
				return nil
			}

			fmt.Println()
			snap := reg.Snapshot()
			pairs := make([]ui.Pair, 0, len(snap))
			for _, key := range reg.Keys() {
				pairs = append(pairs, ui.KV(key, fmt.Sprintf("%v", snap[key])))
			}
			fmt.Print(ui.KeyValues("  ", pairs...))
			if host.Theme != "" {
				fmt.Println(ui.InfoMsg("theme %s selected by machine files", ui.Bold(host.Theme)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory holding machine files")
	cmd.Flags().StringSliceVar(&order, "order", nil, "Facet precedence order, e.g. type,name,user")
	cmd.Flags().StringVarP(&severity, "severity", "s", "", "Empty-pass reporting: silent, warn or fatal")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Narrate each applied settings file")
	return cmd
}
