// Package bank holds the static puzzle and snippet tables and the selection rule.
package bank

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/drills/internal/model"
)

// Picker selects items uniformly at random, preferring ones not seen yet.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewPickerWithSeed returns a deterministic Picker.
func NewPickerWithSeed(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly random item of pool whose id is not in used.
// When every item has been used the whole pool is eligible again; the
// caller's used set is left untouched. ok is false only for an empty pool.
func Pick[T any](p *Picker, pool []T, id func(T) string, used map[string]struct{}) (item T, ok bool) {
	if len(pool) == 0 {
		return item, false
	}
	unused := make([]T, 0, len(pool))
	for _, candidate := range pool {
		if _, seen := used[id(candidate)]; !seen {
			unused = append(unused, candidate)
		}
	}
	if len(unused) == 0 {
		unused = pool
	}
	return unused[p.rnd.Intn(len(unused))], true
}

// FilterEquations returns the equations matching difficulty and category.
// Empty filter values match everything.
func FilterEquations(pool []model.Equation, difficulty model.Difficulty, category model.Category) []model.Equation {
	out := make([]model.Equation, 0, len(pool))
	for _, eq := range pool {
		if difficulty != "" && eq.Difficulty != difficulty {
			continue
		}
		if category != "" && eq.Category != category {
			continue
		}
		out = append(out, eq)
	}
	return out
}

// FilterSnippets returns the snippets in category, or all of them for "".
func FilterSnippets(pool []model.Snippet, category string) []model.Snippet {
	if category == "" {
		return append([]model.Snippet(nil), pool...)
	}
	out := make([]model.Snippet, 0, len(pool))
	for _, s := range pool {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// EquationID returns the id of an equation.
func EquationID(eq model.Equation) string { return eq.ID }

// SnippetID returns the id of a snippet.
func SnippetID(s model.Snippet) string { return s.ID }
