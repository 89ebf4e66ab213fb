// Package stats contains typing metrics and session aggregates.
package stats

import (
	"math"
	"time"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// WPM returns words per minute for chars typed over elapsed, counting five
// characters as a word. It is 0 until time has passed.
func WPM(chars int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(chars) / 5.0 / minutes))
}

// Accuracy returns the percentage of chars that were not errors, clamped at
// zero. ok is false before any character has been typed.
func Accuracy(chars, errors int) (pct int, ok bool) {
	if chars <= 0 {
		return 0, false
	}
	acc := float64(chars-errors) / float64(chars) * 100
	return int(math.Round(math.Max(0, acc))), true
}

// Session holds running aggregates for one run of the program. Nothing in
// it is persisted.
type Session struct {
	TypingRounds int
	SumWPM       int
	SumAccuracy  int
	WPMHistory   []int

	MathsRounds  int
	MathsCorrect int
	BestStreak   int
}

// NewSession returns empty aggregates.
func NewSession() *Session {
	return &Session{}
}

// RecordTyping folds a finished typing round into the aggregates.
func (s *Session) RecordTyping(wpm, accuracy int) {
	s.TypingRounds++
	s.SumWPM += wpm
	s.SumAccuracy += accuracy
	s.WPMHistory = append(s.WPMHistory, wpm)
}

// RecordMaths folds a finished maths round into the aggregates.
func (s *Session) RecordMaths(correct bool, streak int) {
	s.MathsRounds++
	if correct {
		s.MathsCorrect++
	}
	if streak > s.BestStreak {
		s.BestStreak = streak
	}
}

// AvgWPM returns the mean WPM of finished typing rounds.
func (s *Session) AvgWPM() int {
	if s.TypingRounds == 0 {
		return 0
	}
	return int(math.Round(float64(s.SumWPM) / float64(s.TypingRounds)))
}

// AvgAccuracy returns the mean accuracy of finished typing rounds.
func (s *Session) AvgAccuracy() int {
	if s.TypingRounds == 0 {
		return 0
	}
	return int(math.Round(float64(s.SumAccuracy) / float64(s.TypingRounds)))
}

// Sparkline renders values as one row of block glyphs scaled between the
// smallest and largest value.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	levels := len(sparkBlocks) - 1
	out := make([]rune, len(values))
	for i, v := range values {
		if hi == lo {
			out[i] = sparkBlocks[levels/2+1]
			continue
		}
		span := hi - lo
		out[i] = sparkBlocks[((v-lo)*levels*2+span)/(2*span)]
	}
	return string(out)
}
