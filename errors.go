package machconf

import (
	"fmt"
	"strings"
)

// Severity selects how the loader surfaces an empty load pass.
type Severity int

const (
	// SeverityWarn emits one non-fatal diagnostic through the reporter and
	// returns the empty result. The default.
	SeverityWarn Severity = iota
	// SeveritySilent suppresses the diagnostic entirely and returns the
	// empty result.
	SeveritySilent
	// SeverityFatal turns the empty pass into a hard error from Load.
	SeverityFatal
)

// String returns the severity's canonical token.
func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeveritySilent:
		return "silent"
	case SeverityFatal:
		return "fatal"
	}
	return "unknown"
}

// ParseSeverity parses a severity token. It accepts the canonical forms
// "silent", "warn" and "fatal" plus the spellings "suppress", "warning",
// "hard-fail" and "error" seen in configuration, and maps the empty string
// to the default.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return SeverityWarn, nil
	case "silent", "suppress":
		return SeveritySilent, nil
	case "fatal", "hard-fail", "error":
		return SeverityFatal, nil
	}
	return 0, fmt.Errorf("machconf: unknown severity %q", s)
}

// Attempt captures metadata about one failed candidate load: the tier's
// facet kind, the candidate name, the path handed to the file loader and the
// error it returned.
type Attempt struct {
	Kind      FacetKind
	Candidate string
	Path      string
	Err       error
}

// Error implements the error interface.
func (a Attempt) Error() string {
	return fmt.Sprintf("%s (%s): %v", a.Kind, a.Candidate, a.Err)
}

// Unwrap returns the underlying load error.
func (a Attempt) Unwrap() error {
	return a.Err
}

// LoadedFile is one successfully loaded machine file.
type LoadedFile struct {
	Kind      FacetKind
	Candidate string
	Path      string
}

// NoMachineError reports that the candidate plan was empty: no facet of the
// machine's identity produced a tier to try.
type NoMachineError struct{}

// Error implements the error interface.
func (e *NoMachineError) Error() string {
	return "machconf: machine could not be determined"
}

// NoFilesError reports that tiers were available but no candidate file
// loaded. Attempts carries every failed candidate that callers can inspect
// to understand what was tried and why it failed.
type NoFilesError struct {
	Dir      string
	Attempts []Attempt
}

// Error implements the error interface.
func (e *NoFilesError) Error() string {
	return fmt.Sprintf("machconf: no machine files loaded from %s (%d candidates tried)", e.Dir, len(e.Attempts))
}
