package stats

import "testing"

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable(column{title: "Game"}, column{title: "Rounds", right: true}, column{title: "Result"})
	tbl.addRow("Maths", "12", "9 correct")
	tbl.addRow("Typing", "3", "41 WPM")

	lines := tbl.lines()
	want := []string{
		"Game   Rounds Result",
		"------ ------ ---------",
		"Maths      12 9 correct",
		"Typing      3 41 WPM",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestTableShortRowsPadded(t *testing.T) {
	tbl := newTable(column{title: "A"}, column{title: "B"})
	tbl.addRow("x")
	lines := tbl.lines()
	if lines[2] != "x" {
		t.Fatalf("expected trailing empty cell trimmed, got %q", lines[2])
	}
}

func TestTableWideRunes(t *testing.T) {
	tbl := newTable(column{title: "K"}, column{title: "V"})
	tbl.addRow("日本", "1")
	if got := tbl.lines()[2]; got != "日本 1" {
		t.Fatalf("expected width-aware padding, got %q", got)
	}
}
