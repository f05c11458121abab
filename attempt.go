package machconf

import "context"

// attemptLog accumulates the failed candidate loads of one pass, in the
// order they were tried.
type attemptLog struct {
	attempts []Attempt
}

// try hands one candidate path to the file loader and reports whether it
// loaded, recording the failure when it did not.
func (l *attemptLog) try(ctx context.Context, files FileLoader, kind FacetKind, candidate, path string) bool {
	if err := files.Load(ctx, path); err != nil {
		l.fail(kind, candidate, path, err)
		return false
	}
	return true
}

func (l *attemptLog) fail(kind FacetKind, candidate, path string, err error) {
	l.attempts = append(l.attempts, Attempt{
		Kind:      kind,
		Candidate: candidate,
		Path:      path,
		Err:       err,
	})
}
