// Package validate checks player answers against equation results.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/drills/internal/model"
)

var resultRe = regexp.MustCompile(`=\s*(\d+)`)

// ExpectedResult extracts the number after "=" in an equation template.
func ExpectedResult(template string) (int, bool) {
	m := resultRe.FindStringSubmatch(template)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// BlankCount returns the number of slots in a template.
func BlankCount(template string) int {
	return strings.Count(template, model.Blank)
}

// Answer reports whether answers, in left-to-right slot order, make the
// equation true. Subtraction and division are checked in the given order
// only. Any pair that is numerically correct is accepted, not just the
// canonical one.
func Answer(template string, category model.Category, answers []int) bool {
	if len(answers) != 2 {
		return false
	}
	expected, ok := ExpectedResult(template)
	if !ok {
		return false
	}
	a, b := answers[0], answers[1]
	switch category {
	case model.Addition:
		return a+b == expected
	case model.Subtraction:
		return a-b == expected
	case model.Multiplication:
		return a*b == expected
	case model.Division:
		if b == 0 {
			return false
		}
		return float64(a)/float64(b) == float64(expected)
	default:
		return false
	}
}

// Equation is Answer applied to an equation's template and category.
func Equation(eq model.Equation, answers []int) bool {
	return Answer(eq.Template, eq.Category, answers)
}
