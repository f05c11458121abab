package machconf

import "strings"

// isUnsafe reports whether r may not appear in a machine file name: shell
// metacharacters, path separators and whitespace that would make a derived
// name awkward to create, reference or commit.
func isUnsafe(r rune) bool {
	switch r {
	case '#', '%', '&', '{', '}', '$', '!', '\'', '"', '@', '<', '>',
		'*', '?', '/', ' ', '\r', '\n', '\t', '+', '`', '|', '=', ':':
		return true
	}
	return false
}

// Safe normalizes a raw identity string into a filesystem-safe token: the
// string is lower-cased, every run of one or more unsafe characters collapses
// into a single hyphen, and leading and trailing hyphens are trimmed. Safe is
// deterministic and idempotent, so tokens stay stable across runs on the same
// host.
func Safe(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range strings.ToLower(s) {
		if isUnsafe(r) {
			pending = true
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), "-")
}
