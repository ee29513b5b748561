package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given number of terminal cells, adding
// ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// padRight pads a string with spaces to the given cell width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// center truncates s to width and pads both sides to exactly width cells.
func center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + padRight(s, width-left)
}

// cells splits line into one entry per terminal column. The second column
// of a wide rune holds an empty string; zero-width runes stay attached to
// the rune before them.
func cells(line string) []string {
	out := make([]string, 0, len(line))
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if n := len(out); n > 0 {
				out[n-1] += string(r)
			}
			continue
		}
		out = append(out, string(r))
		for i := 1; i < w; i++ {
			out = append(out, "")
		}
	}
	return out
}

// joinCells renders columns [from, to) of c. A wide rune split by either
// edge is replaced with a space so the result is exactly to-from cells.
func joinCells(c []string, from, to int) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		switch {
		case i >= len(c):
			b.WriteByte(' ')
		case c[i] == "":
			if i == from {
				b.WriteByte(' ')
			}
		case i == to-1 && i+1 < len(c) && c[i+1] == "":
			b.WriteByte(' ')
		default:
			b.WriteString(c[i])
		}
	}
	return b.String()
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
