package stats

import (
	"fmt"
	"io"
	"strconv"
)

// RenderSummary prints the session aggregates as a table.
func RenderSummary(w io.Writer, s *Session) error {
	if s == nil || (s.TypingRounds == 0 && s.MathsRounds == 0) {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Session"); err != nil {
		return err
	}
	tbl := newTable(
		column{title: "Game"},
		column{title: "Rounds", right: true},
		column{title: "Result"},
		column{title: "Detail"},
	)
	if s.MathsRounds > 0 {
		tbl.addRow("Maths",
			strconv.Itoa(s.MathsRounds),
			fmt.Sprintf("%d correct", s.MathsCorrect),
			fmt.Sprintf("best streak %d", s.BestStreak))
	}
	if s.TypingRounds > 0 {
		tbl.addRow("Typing",
			strconv.Itoa(s.TypingRounds),
			fmt.Sprintf("%d WPM", s.AvgWPM()),
			fmt.Sprintf("%d%% accuracy", s.AvgAccuracy()))
	}
	if err := tbl.write(w); err != nil {
		return err
	}
	if len(s.WPMHistory) > 1 {
		if _, err := fmt.Fprintf(w, "WPM trend: %s\n", Sparkline(s.WPMHistory)); err != nil {
			return err
		}
	}
	return nil
}
