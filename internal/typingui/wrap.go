package typingui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/drills/internal/typing"
)

const tabWidth = 4

type styledRune struct {
	s         string
	width     int
	isSpace   bool
	isNewline bool
}

func syntaxStyle(kind typing.TokenKind) lipgloss.Style {
	if style, ok := syntaxStyles[kind]; ok {
		return style
	}
	return syntaxStyles[typing.TokenDefault]
}

func buildStyledRunes(targetRunes, inputRunes []rune, kinds []typing.TokenKind, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		kind := typing.TokenDefault
		if i < len(kinds) {
			kind = kinds[i]
		}
		style := syntaxStyle(kind)
		typed := i < len(inputRunes)
		wrong := typed && inputRunes[i] != target
		switch {
		case wrong:
			style = incorrectStyle
		case !typed:
			style = style.Faint(true)
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}

		item := styledRune{isSpace: target == ' ' || target == '\t', isNewline: target == '\n'}
		switch {
		case target == '\n':
			if wrong || i == cursorIndex {
				item.s = style.Render("↵")
				item.width = 1
			}
		case target == '\t':
			item.s = style.Render(strings.Repeat(" ", tabWidth))
			item.width = tabWidth
		case target == ' ' && wrong:
			item.s = style.Render("•")
			item.width = 1
		default:
			item.s = style.Render(string(target))
			item.width = runewidth.RuneWidth(target)
		}
		out = append(out, item)
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks at target newlines and soft-wraps lines wider than
// width at the last space.
func wrapStyledRunes(runes []styledRune, width int) string {
	lines := splitLines(runes)
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, width))
	}
	return strings.Join(wrapped, "\n")
}

func splitLines(runes []styledRune) [][]styledRune {
	lines := [][]styledRune{}
	line := []styledRune{}
	for _, item := range runes {
		if item.isNewline {
			if item.s != "" {
				line = append(line, item)
			}
			lines = append(lines, line)
			line = []styledRune{}
			continue
		}
		line = append(line, item)
	}
	return append(lines, line)
}

// wrapLine packs space-terminated words into rows no wider than width.
// A word wider than a row is split across rows.
func wrapLine(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	rows := []string{}
	var row []styledRune
	rowWidth := 0
	flush := func() {
		rows = append(rows, renderStyledRunes(row))
		row = nil
		rowWidth = 0
	}
	for _, word := range splitWords(runes) {
		if rowWidth > 0 && rowWidth+widthOf(word) > width {
			flush()
		}
		for _, item := range word {
			if rowWidth > 0 && rowWidth+item.width > width {
				flush()
			}
			row = append(row, item)
			rowWidth += item.width
		}
	}
	flush()
	return strings.Join(rows, "\n")
}

// splitWords cuts runes after every space, keeping the space with the word
// before it.
func splitWords(runes []styledRune) [][]styledRune {
	var words [][]styledRune
	start := 0
	for i, item := range runes {
		if item.isSpace {
			words = append(words, runes[start:i+1])
			start = i + 1
		}
	}
	if start < len(runes) {
		words = append(words, runes[start:])
	}
	return words
}

func widthOf(runes []styledRune) int {
	total := 0
	for _, item := range runes {
		total += item.width
	}
	return total
}
