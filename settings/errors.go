package settings

import (
	"fmt"
	"strings"
)

// EntryError is one rejected document entry: the setting key and the reason
// it could not be applied.
type EntryError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e EntryError) Unwrap() error {
	return e.Err
}

// ApplyError groups the entries of a document that could not be applied. The
// group can be inspected to understand which entries were rejected and why;
// entries absent from the group were applied normally.
type ApplyError struct {
	entries []EntryError
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	if e == nil || len(e.entries) == 0 {
		return ""
	}
	parts := make([]string, len(e.entries))
	for i, entry := range e.entries {
		parts[i] = entry.Error()
	}
	return "settings: apply errors: " + strings.Join(parts, "; ")
}

// Entries returns a copy of the rejected entries for inspection.
func (e *ApplyError) Entries() []EntryError {
	if e == nil {
		return nil
	}
	out := make([]EntryError, len(e.entries))
	copy(out, e.entries)
	return out
}

// Has reports whether the group contains any rejected entries.
func (e *ApplyError) Has() bool {
	return e != nil && len(e.entries) > 0
}

// appendEntryError adds an entry to the group, instantiating it if necessary.
func appendEntryError(e **ApplyError, key string, err error) {
	group := *e
	if group == nil {
		group = &ApplyError{}
	}
	group.entries = append(group.entries, EntryError{Key: key, Err: err})
	*e = group
}
