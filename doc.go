// Package machconf resolves which per-machine configuration files apply to
// the current execution host and loads the first match per precedence tier.
// A single shared configuration repository can then carry host-specific
// overrides (fonts, theme, settings) without every host editing a shared
// file.
//
// Identity is derived from three facets: the host's name, its platform type
// and the invoking user's real login name, each normalized into a stable,
// filesystem-safe token. For every facet, in a configurable precedence
// order, the loader tries a composite candidate ("user-bob") before the bare
// one ("bob") and loads at most one file per tier, tolerating absence
// gracefully. What loading a file means is supplied by the host through the
// FileLoader primitive; the loaders/settingsfile package provides one that
// applies TOML, YAML or JSON documents to a settings registry.
//
// Example:
//
//	reg := settings.NewRegistry()
//	reg.MustRegister(settings.Definition{Key: "font.family", Default: "monospace"})
//
//	files, err := settingsfile.New(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ldr := machconf.New(
//	    machconf.WithDirectory("/home/bob/dotfiles/machine.d"),
//	    machconf.WithFileLoader(files),
//	)
//	res, err := ldr.Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Println(res.Paths())
package machconf
