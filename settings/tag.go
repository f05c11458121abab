package settings

import (
	"fmt"
	"strings"
)

// bindTag describes how one struct field maps onto a setting.
type bindTag struct {
	Key          string
	Doc          string
	DefaultValue string
	HasDefault   bool
}

// parseBindTag parses a `machconf:"..."` struct tag: whitespace-separated
// key:value components, where a value may be single- or double-quoted to
// carry spaces and a backslash escapes the next character inside quotes.
func parseBindTag(raw string) (bindTag, error) {
	var tag bindTag
	s := raw
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return tag, nil
		}
		key, rest, err := scanTagKey(s)
		if err != nil {
			return bindTag{}, err
		}
		value, rest, err := scanTagValue(rest)
		if err != nil {
			return bindTag{}, fmt.Errorf("key %q: %w", key, err)
		}
		if err := tag.assign(key, value); err != nil {
			return bindTag{}, err
		}
		s = rest
	}
}

// scanTagKey consumes a component key up to its colon.
func scanTagKey(s string) (key, rest string, err error) {
	i := strings.IndexAny(s, ": \t")
	if i < 0 || s[i] != ':' {
		word := s
		if i >= 0 {
			word = s[:i]
		}
		return "", "", fmt.Errorf("component %q is not key:value", word)
	}
	key = strings.ToLower(s[:i])
	if key == "" {
		return "", "", fmt.Errorf("empty tag key")
	}
	return key, s[i+1:], nil
}

// scanTagValue consumes a component value, bare or quoted.
func scanTagValue(s string) (value, rest string, err error) {
	if s == "" || s[0] == ' ' || s[0] == '\t' {
		return "", "", fmt.Errorf("missing value")
	}
	if quote := s[0]; quote == '\'' || quote == '"' {
		var b strings.Builder
		for i := 1; i < len(s); i++ {
			switch c := s[i]; {
			case c == '\\' && i+1 < len(s):
				i++
				b.WriteByte(s[i])
			case c == quote:
				return b.String(), s[i+1:], nil
			default:
				b.WriteByte(c)
			}
		}
		return "", "", fmt.Errorf("unterminated %c-quoted value", quote)
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:], nil
	}
	return s, "", nil
}

func (t *bindTag) assign(key, value string) error {
	switch key {
	case "key":
		t.Key = value
	case "doc":
		t.Doc = value
	case "default":
		t.DefaultValue = value
		t.HasDefault = true
	default:
		return fmt.Errorf("unknown machconf tag key %q", key)
	}
	return nil
}
