// Package ui provides the machconf CLI's terminal styling.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent = lipgloss.Color("105")
	green  = lipgloss.Color("78")
	red    = lipgloss.Color("203")
	amber  = lipgloss.Color("215")
	gray   = lipgloss.Color("245")
	border = lipgloss.Color("239")
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(accent)
	successStyle = lipgloss.NewStyle().Foreground(green)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
	warnStyle    = lipgloss.NewStyle().Foreground(amber)
	mutedStyle   = lipgloss.NewStyle().Foreground(gray)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Bold emphasizes an inline fragment.
func Bold(s string) string { return boldStyle.Render(s) }

// Muted de-emphasizes an inline fragment, for annotations next to values.
func Muted(s string) string { return mutedStyle.Render(s) }

// msg renders a status line: a styled one-character mark, a space, the text.
func msg(style lipgloss.Style, mark, format string, a []any) string {
	return style.Render(mark) + " " + fmt.Sprintf(format, a...)
}

func SuccessMsg(format string, a ...any) string { return msg(successStyle, "✓", format, a) }
func WarnMsg(format string, a ...any) string    { return msg(warnStyle, "!", format, a) }
func ErrorMsg(format string, a ...any) string   { return msg(errorStyle, "✗", format, a) }
func InfoMsg(format string, a ...any) string    { return msg(accentStyle, "●", format, a) }

// Pair is one labeled value for KeyValues. Construct with KV.
type Pair struct {
	key   string
	value string
}

// KV creates a key-value pair.
func KV(key, value string) Pair {
	return Pair{key: key, value: value}
}

// KeyValues renders pairs as aligned "key: value" lines, one per pair, with
// a trailing newline.
func KeyValues(indent string, pairs ...Pair) string {
	width := 0
	for _, p := range pairs {
		if n := len(p.key); n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(indent)
		b.WriteString(mutedStyle.Render(p.key + ":"))
		b.WriteString(strings.Repeat(" ", width-len(p.key)+1))
		b.WriteString(p.value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Table renders rows under a styled header with rounded borders.
func Table(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}
