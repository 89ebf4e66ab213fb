// Package typing scores a typing round against a target text.
package typing

import (
	"fmt"
	"time"

	"github.com/verte-zerg/drills/internal/stats"
)

// Engine compares keystrokes against a target position by position.
// Errors are counted when a character is appended and never decremented.
type Engine struct {
	target     []rune
	input      []rune
	errors     int
	autoIndent bool

	startedAt time.Time
	endedAt   time.Time
}

// New returns an engine for target. The target must not be empty.
func New(target string, autoIndent bool) (*Engine, error) {
	runes := []rune(target)
	if len(runes) == 0 {
		return nil, fmt.Errorf("typing target is empty")
	}
	return &Engine{target: runes, autoIndent: autoIndent}, nil
}

// Type appends a printable character. Newlines and tabs are refused here;
// they go through Enter and Tab.
func (e *Engine) Type(r rune, now time.Time) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return e.appendRun([]rune{r}, now)
}

// Enter handles the return key. When a newline is expected it is appended
// together with the indentation that follows it (if auto-indent is on).
// Otherwise a newline is appended as a mistyped character.
func (e *Engine) Enter(now time.Time) bool {
	if e.Complete() {
		return false
	}
	pos := len(e.input)
	if e.target[pos] != '\n' {
		return e.appendRun([]rune{'\n'}, now)
	}
	end := pos + 1
	if e.autoIndent {
		end = indentEnd(e.target, end)
	}
	return e.appendRun(e.target[pos:end], now)
}

// Tab handles the tab key. When indentation is expected the whole run of
// spaces and tabs is appended at once; otherwise a tab counts as a miss.
func (e *Engine) Tab(now time.Time) bool {
	if e.Complete() {
		return false
	}
	pos := len(e.input)
	end := indentEnd(e.target, pos)
	if end == pos {
		return e.appendRun([]rune{'\t'}, now)
	}
	return e.appendRun(e.target[pos:end], now)
}

// Backspace removes the last typed character. The error count is kept.
func (e *Engine) Backspace() bool {
	if e.Complete() || len(e.input) == 0 {
		return false
	}
	e.input = e.input[:len(e.input)-1]
	return true
}

func (e *Engine) appendRun(run []rune, now time.Time) bool {
	if e.Complete() || len(run) == 0 {
		return false
	}
	if e.startedAt.IsZero() {
		e.startedAt = now
	}
	for _, r := range run {
		if len(e.input) >= len(e.target) {
			break
		}
		if r != e.target[len(e.input)] {
			e.errors++
		}
		e.input = append(e.input, r)
	}
	if e.Complete() {
		e.endedAt = now
	}
	return true
}

func indentEnd(target []rune, from int) int {
	i := from
	for i < len(target) && (target[i] == ' ' || target[i] == '\t') {
		i++
	}
	return i
}

// Complete reports whether the input is as long as the target.
func (e *Engine) Complete() bool {
	return len(e.input) == len(e.target)
}

// Started reports whether the first keystroke has happened.
func (e *Engine) Started() bool { return !e.startedAt.IsZero() }

// Errors returns the number of mistyped character events.
func (e *Engine) Errors() int { return e.errors }

// Typed returns the number of characters in the input.
func (e *Engine) Typed() int { return len(e.input) }

// Len returns the target length.
func (e *Engine) Len() int { return len(e.target) }

// Target returns the target text.
func (e *Engine) Target() []rune { return e.target }

// Input returns the typed text.
func (e *Engine) Input() []rune { return e.input }

// Elapsed returns time since the first keystroke, frozen at completion.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	if e.startedAt.IsZero() {
		return 0
	}
	if e.Complete() {
		return e.endedAt.Sub(e.startedAt)
	}
	return now.Sub(e.startedAt)
}

// WPM returns the live words per minute, frozen once the round completes.
func (e *Engine) WPM(now time.Time) int {
	return stats.WPM(len(e.input), e.Elapsed(now))
}

// Accuracy returns the rounded accuracy percentage. ok is false before the
// first character.
func (e *Engine) Accuracy() (pct int, ok bool) {
	return stats.Accuracy(len(e.input), e.errors)
}
