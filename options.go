package machconf

import "log/slog"

// Option configures the Loader.
type Option func(*Loader)

// WithDirectory sets the directory searched for machine files. The empty
// string keeps the default.
func WithDirectory(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithOrder sets the precedence order of facet tiers. The slice is copied;
// an empty order keeps the default.
func WithOrder(order []FacetKind) Option {
	return func(l *Loader) {
		if len(order) > 0 {
			l.order = append([]FacetKind(nil), order...)
		}
	}
}

// WithFileLoader supplies the host's file-loading primitive.
func WithFileLoader(files FileLoader) Option {
	return func(l *Loader) {
		if files != nil {
			l.files = files
		}
	}
}

// WithSeverity selects how an empty load pass is surfaced.
func WithSeverity(s Severity) Option {
	return func(l *Loader) {
		l.severity = s
	}
}

// WithReporter overrides the diagnostic sink used under SeverityWarn. The
// default warns through the loader's logger.
func WithReporter(fn ReportFunc) Option {
	return func(l *Loader) {
		if fn != nil {
			l.report = fn
		}
	}
}

// WithLogger attaches a structured logger for pass progress. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithHostname overrides how the host name facet is read.
func WithHostname(fn func() (string, error)) Option {
	return func(l *Loader) {
		if fn != nil {
			l.probes.hostname = fn
		}
	}
}

// WithPlatform overrides how the host type facet is read.
func WithPlatform(fn func() string) Option {
	return func(l *Loader) {
		if fn != nil {
			l.probes.platform = fn
		}
	}
}

// WithUsername overrides how the user facet is read.
func WithUsername(fn func() string) Option {
	return func(l *Loader) {
		if fn != nil {
			l.probes.username = fn
		}
	}
}
