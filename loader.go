package machconf

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileLoader is the host-supplied primitive that attempts to load one
// machine file. Candidate names carry no extension; resolving extensions,
// and what loading a file actually does, belongs to the implementation.
// Returning nil means the candidate was loaded. Implementations are expected
// to treat a missing file as an ordinary failure, not a reason to panic or
// abort the pass.
type FileLoader interface {
	Load(ctx context.Context, path string) error
}

// LoadFunc adapts a plain function to the FileLoader interface.
type LoadFunc func(ctx context.Context, path string) error

// Load calls fn(ctx, path).
func (fn LoadFunc) Load(ctx context.Context, path string) error {
	return fn(ctx, path)
}

// ReportFunc receives the single diagnostic emitted when a load pass comes
// up empty under SeverityWarn.
type ReportFunc func(message string)

// Loader resolves the machine's identity and loads the first matching file
// per precedence tier from a directory of candidates.
type Loader struct {
	dir      string
	order    []FacetKind
	files    FileLoader
	severity Severity
	report   ReportFunc
	logger   *slog.Logger
	probes   probes
}

// New constructs a Loader with optional functional options. A FileLoader
// must be supplied through WithFileLoader before Load is called; everything
// else has a usable default.
func New(opts ...Option) *Loader {
	l := &Loader{
		dir:      DefaultDirectory(),
		order:    DefaultOrder,
		severity: SeverityWarn,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		probes:   defaultProbes(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.report == nil {
		l.report = func(message string) { l.logger.Warn(message) }
	}
	return l
}

// DefaultDirectory returns the stock machine-file location, machconf/machine.d
// under the user's configuration directory, or a relative machine.d when no
// configuration directory can be determined.
func DefaultDirectory() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "machine.d"
	}
	return filepath.Join(dir, "machconf", "machine.d")
}

// Result is the outcome of one load pass.
type Result struct {
	// Identity is the machine identity the pass resolved.
	Identity Identity
	// Loaded lists the files that loaded, at most one per satisfied tier,
	// in tier order. Order is significant: a later file may intentionally
	// override what an earlier one set up.
	Loaded []LoadedFile
	// Attempts lists every candidate that failed, in the order tried.
	Attempts []Attempt
}

// Paths returns the loaded file paths in load order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Loaded))
	for i, f := range r.Loaded {
		paths[i] = f.Path
	}
	return paths
}

// Identity resolves the machine identity using the loader's probes. Every
// call re-reads the environment.
func (l *Loader) Identity() Identity {
	return resolveIdentity(l.probes)
}

// Plan resolves the identity and builds the candidate tiers the next Load
// would walk, without touching the filesystem.
func (l *Loader) Plan() []Tier {
	return Plan(l.Identity(), l.order)
}

// Load resolves the machine identity, builds the candidate plan and walks it
// tier by tier. Within a tier the composite name is tried before the bare
// name; the first success satisfies the tier and the pass moves on, so each
// tier contributes at most one file. Individual load failures are recorded
// in Result.Attempts and never abort the pass. Identity and plan are rebuilt
// fresh on every call; nothing carries over between passes.
//
// When the plan is empty, or when no tier loaded a file, the configured
// Severity decides the outcome: SeverityFatal returns a *NoMachineError or
// *NoFilesError alongside the result, SeverityWarn emits one diagnostic
// through the reporter, SeveritySilent does neither. In the latter two cases
// the error is nil and the result simply has no loaded files.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	if l.files == nil {
		return nil, errors.New("machconf: a FileLoader is required")
	}

	res := &Result{Identity: l.Identity()}
	tiers := Plan(res.Identity, l.order)
	if len(tiers) == 0 {
		return res, l.dispatch(&NoMachineError{})
	}

	var rec attemptLog
	for _, tier := range tiers {
		for _, candidate := range tier.Candidates {
			path := filepath.Join(l.dir, candidate)
			if !rec.try(ctx, l.files, tier.Kind, candidate, path) {
				continue
			}
			res.Loaded = append(res.Loaded, LoadedFile{Kind: tier.Kind, Candidate: candidate, Path: path})
			l.logger.Debug("machine file loaded", "facet", tier.Kind.String(), "path", path)
			break
		}
	}
	res.Attempts = rec.attempts

	if len(res.Loaded) == 0 {
		return res, l.dispatch(&NoFilesError{Dir: l.dir, Attempts: rec.attempts})
	}
	return res, nil
}

// dispatch applies the configured severity to an empty load pass.
func (l *Loader) dispatch(err error) error {
	switch l.severity {
	case SeverityFatal:
		return err
	case SeverityWarn:
		l.report(err.Error())
	}
	return nil
}
