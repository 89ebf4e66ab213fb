// Package model defines shared data structures.
package model

import "time"

// Category is the arithmetic operator family of an equation.
type Category string

// Equation categories.
const (
	Addition       Category = "addition"
	Subtraction    Category = "subtraction"
	Multiplication Category = "multiplication"
	Division       Category = "division"
)

// Difficulty groups puzzles into pools.
type Difficulty string

// Difficulty levels.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Blank marks a slot in an equation template.
const Blank = "_"

// Equation is a fill-in-the-blank arithmetic puzzle.
type Equation struct {
	ID         string
	Category   Category
	Difficulty Difficulty
	// Template holds the equation text, e.g. "_ + _ = 11".
	Template  string
	Answers   []int
	Options   []int
	Title     string
	TimeLimit int // seconds
}

// Snippet is a code sample for the typing tool.
type Snippet struct {
	ID         string
	Language   string
	Category   string
	Difficulty Difficulty
	Code       string
	Title      string
}

// MathsConfig defines maths game settings.
type MathsConfig struct {
	Difficulty     Difficulty
	Category       Category
	RetryIncorrect bool
	FeedbackDelay  time.Duration
}

// TypingConfig defines typing tool settings.
type TypingConfig struct {
	Category    string
	AutoIndent  bool
	SnippetsDir string
}

// View identifiers for the menu shell.
const (
	ViewMaths  = "maths"
	ViewTyping = "typing"
)
