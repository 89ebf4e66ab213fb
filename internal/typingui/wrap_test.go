package typingui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/drills/internal/typing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	kinds := typing.Classify(target)

	runes := buildStyledRunes(target, input, kinds, len(input))
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != syntaxStyle(kinds[0]).Render("a") {
		t.Fatalf("expected syntax style for typed rune")
	}
	if runes[1].s != syntaxStyle(kinds[1]).Faint(true).Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")
	kinds := typing.Classify(target)

	runes := buildStyledRunes(target, input, kinds, -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesMarksWrongSpace(t *testing.T) {
	target := []rune("a b")
	input := []rune("ax")
	kinds := typing.Classify(target)

	runes := buildStyledRunes(target, input, kinds, -1)
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected dot marker for mistyped space, got %q", runes[1].s)
	}
}

func TestBuildStyledRunesNewlineMarker(t *testing.T) {
	target := []rune("a\nb")
	kinds := typing.Classify(target)

	runes := buildStyledRunes(target, []rune("a"), kinds, 1)
	if !runes[1].isNewline || runes[1].s == "" {
		t.Fatalf("expected visible newline marker at cursor")
	}
	runes = buildStyledRunes(target, []rune("a\n"), kinds, 2)
	if runes[1].s != "" {
		t.Fatalf("expected hidden newline once typed")
	}
}

func TestBuildStyledRunesExpandsTab(t *testing.T) {
	target := []rune("\tx")
	runes := buildStyledRunes(target, nil, typing.Classify(target), -1)
	if runes[0].width != tabWidth {
		t.Fatalf("expected tab width %d, got %d", tabWidth, runes[0].width)
	}
}

func TestWrapStyledRunesSplitsOnNewline(t *testing.T) {
	target := []rune("ab\ncd")
	runes := buildStyledRunes(target, nil, make([]typing.TokenKind, len(target)), -1)
	out := wrapStyledRunes(runes, 0)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Fatalf("expected 1 line break, got %d in %q", got, out)
	}
}

func TestWrapLineBreaksAtLastSpace(t *testing.T) {
	runes := []styledRune{
		{s: "a", width: 1},
		{s: " ", width: 1, isSpace: true},
		{s: "b", width: 1},
		{s: "c", width: 1},
	}
	if got := wrapLine(runes, 3); got != "a \nbc" {
		t.Fatalf("expected soft wrap after space, got %q", got)
	}
}

func TestWrapLineHardBreaksLongWord(t *testing.T) {
	runes := []styledRune{
		{s: "a", width: 1},
		{s: "b", width: 1},
		{s: "c", width: 1},
	}
	if got := wrapLine(runes, 2); got != "ab\nc" {
		t.Fatalf("expected hard wrap, got %q", got)
	}
}
