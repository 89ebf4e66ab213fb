package mathsui

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/drills/internal/slots"
)

// digitBuffer collects typed digits until they name one available option.
type digitBuffer struct {
	digits string
}

// push appends d and reports the option to assign, if the buffer now names
// exactly one available option that no other available option extends.
// A digit that leads nowhere restarts the buffer on its own.
func (b *digitBuffer) push(board *slots.Board, options []int, d rune) (value int, ok bool) {
	next := b.digits + string(d)
	if !hasPrefix(board, options, next) {
		next = string(d)
		if !hasPrefix(board, options, next) {
			b.digits = ""
			return 0, false
		}
	}
	b.digits = next
	v, exact := exactMatch(board, options, next)
	if exact && !extended(board, options, next) {
		b.digits = ""
		return v, true
	}
	return 0, false
}

// flush returns the option the buffer names exactly, clearing it either way.
func (b *digitBuffer) flush(board *slots.Board, options []int) (value int, ok bool) {
	if b.digits == "" {
		return 0, false
	}
	v, exact := exactMatch(board, options, b.digits)
	b.digits = ""
	return v, exact
}

// trim drops the last buffered digit. It reports false when already empty.
func (b *digitBuffer) trim() bool {
	if b.digits == "" {
		return false
	}
	b.digits = b.digits[:len(b.digits)-1]
	return true
}

func (b *digitBuffer) reset() {
	b.digits = ""
}

func hasPrefix(board *slots.Board, options []int, prefix string) bool {
	for _, v := range options {
		if board.Available(v) && strings.HasPrefix(strconv.Itoa(v), prefix) {
			return true
		}
	}
	return false
}

func exactMatch(board *slots.Board, options []int, digits string) (int, bool) {
	for _, v := range options {
		if board.Available(v) && strconv.Itoa(v) == digits {
			return v, true
		}
	}
	return 0, false
}

func extended(board *slots.Board, options []int, prefix string) bool {
	for _, v := range options {
		s := strconv.Itoa(v)
		if board.Available(v) && s != prefix && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
