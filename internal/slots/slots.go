// Package slots implements the blank-filling board of a maths round.
package slots

// Board tracks the values placed in an ordered list of blanks and how many
// instances of each option value are in use.
type Board struct {
	multiplicity map[int]int
	usage        map[int]int
	values       []int
	filled       []bool
	active       int
}

// New returns a board of n empty slots drawing from options. Options may
// repeat; each repetition can be placed once.
func New(options []int, n int) *Board {
	b := &Board{multiplicity: make(map[int]int, len(options))}
	for _, v := range options {
		b.multiplicity[v]++
	}
	b.Initialize(n, 0)
	return b
}

// Initialize empties the board to n slots and puts the cursor on firstActive.
func (b *Board) Initialize(n, firstActive int) {
	if n < 0 {
		n = 0
	}
	b.values = make([]int, n)
	b.filled = make([]bool, n)
	b.usage = map[int]int{}
	b.active = 0
	if firstActive >= 0 && firstActive < n {
		b.active = firstActive
	}
}

// Len returns the number of slots.
func (b *Board) Len() int { return len(b.values) }

// Active returns the cursor position.
func (b *Board) Active() int { return b.active }

// Slot returns the value in slot i and whether it is filled.
func (b *Board) Slot(i int) (int, bool) {
	if i < 0 || i >= len(b.values) || !b.filled[i] {
		return 0, false
	}
	return b.values[i], true
}

// Values returns the placed values in slot order. Empty slots are skipped.
func (b *Board) Values() []int {
	out := make([]int, 0, len(b.values))
	for i, v := range b.values {
		if b.filled[i] {
			out = append(out, v)
		}
	}
	return out
}

// Multiplicity returns how many times v appears among the options.
func (b *Board) Multiplicity(v int) int { return b.multiplicity[v] }

// Remaining returns how many more instances of v can be placed.
func (b *Board) Remaining(v int) int {
	return b.multiplicity[v] - b.usage[v]
}

// Available reports whether v can be placed in the active slot.
func (b *Board) Available(v int) bool {
	return b.Remaining(v) > 0
}

// Assign places v in the active slot and moves the cursor to the next empty
// slot after it, if any. Placing into a filled slot replaces its value. It
// returns false, leaving the board untouched, when v is exhausted.
func (b *Board) Assign(v int) bool {
	if len(b.values) == 0 || !b.Available(v) {
		return false
	}
	i := b.active
	if b.filled[i] {
		b.release(b.values[i])
	}
	b.values[i] = v
	b.filled[i] = true
	b.usage[v]++
	for j := i + 1; j < len(b.values); j++ {
		if !b.filled[j] {
			b.active = j
			break
		}
	}
	return true
}

// Undo clears the highest-index filled slot and moves the cursor there.
// It returns false when the board is empty.
func (b *Board) Undo() bool {
	for i := len(b.values) - 1; i >= 0; i-- {
		if !b.filled[i] {
			continue
		}
		b.release(b.values[i])
		b.values[i] = 0
		b.filled[i] = false
		b.active = i
		return true
	}
	return false
}

// SetActive moves the cursor to i. Out of range indexes are ignored.
func (b *Board) SetActive(i int) bool {
	if i < 0 || i >= len(b.values) {
		return false
	}
	b.active = i
	return true
}

// Move shifts the cursor by delta; moves off the board are ignored.
func (b *Board) Move(delta int) bool {
	return b.SetActive(b.active + delta)
}

// IsComplete reports whether every slot holds a value.
func (b *Board) IsComplete() bool {
	for _, f := range b.filled {
		if !f {
			return false
		}
	}
	return true
}

// InUse returns the number of placed instances of v.
func (b *Board) InUse(v int) int { return b.usage[v] }

func (b *Board) release(v int) {
	b.usage[v]--
	if b.usage[v] <= 0 {
		delete(b.usage, v)
	}
}
