package bank

import "github.com/verte-zerg/drills/internal/model"

// Equations is the built-in puzzle table.
var Equations = []model.Equation{
	{
		ID:         "add-easy-1",
		Category:   model.Addition,
		Difficulty: model.Easy,
		Template:   "_ + _ = 11",
		Answers:    []int{4, 7},
		Options:    []int{1, 2, 4, 6, 7, 8},
		Title:      "Single Digit Addition",
		TimeLimit:  30,
	},
	{
		ID:         "add-easy-2",
		Category:   model.Addition,
		Difficulty: model.Easy,
		Template:   "_ + _ = 9",
		Answers:    []int{3, 6},
		Options:    []int{1, 3, 4, 5, 6, 8},
		Title:      "Single Digit Addition",
		TimeLimit:  30,
	},
	{
		ID:         "add-easy-3",
		Category:   model.Addition,
		Difficulty: model.Easy,
		Template:   "_ + _ = 15",
		Answers:    []int{8, 7},
		Options:    []int{3, 5, 7, 8, 9, 6},
		Title:      "Single Digit Addition",
		TimeLimit:  30,
	},
	{
		ID:         "sub-easy-1",
		Category:   model.Subtraction,
		Difficulty: model.Easy,
		Template:   "_ - _ = 5",
		Answers:    []int{12, 7},
		Options:    []int{3, 7, 9, 12, 15, 18},
		Title:      "Simple Subtraction",
		TimeLimit:  30,
	},
	{
		ID:         "sub-easy-2",
		Category:   model.Subtraction,
		Difficulty: model.Easy,
		Template:   "_ - _ = 8",
		Answers:    []int{15, 7},
		Options:    []int{5, 7, 10, 12, 15, 20},
		Title:      "Simple Subtraction",
		TimeLimit:  30,
	},
	{
		ID:         "mult-easy-1",
		Category:   model.Multiplication,
		Difficulty: model.Easy,
		Template:   "_ × _ = 12",
		Answers:    []int{3, 4},
		Options:    []int{2, 3, 4, 5, 6, 8},
		Title:      "Times Tables",
		TimeLimit:  30,
	},
	{
		ID:         "mult-easy-2",
		Category:   model.Multiplication,
		Difficulty: model.Easy,
		Template:   "_ × _ = 24",
		Answers:    []int{6, 4},
		Options:    []int{3, 4, 6, 7, 8, 12},
		Title:      "Times Tables",
		TimeLimit:  30,
	},
	{
		ID:         "mult-easy-3",
		Category:   model.Multiplication,
		Difficulty: model.Easy,
		Template:   "_ × _ = 18",
		Answers:    []int{3, 6},
		Options:    []int{2, 3, 6, 7, 9, 12},
		Title:      "Times Tables",
		TimeLimit:  30,
	},
	{
		ID:         "div-easy-1",
		Category:   model.Division,
		Difficulty: model.Easy,
		Template:   "_ ÷ _ = 4",
		Answers:    []int{12, 3},
		Options:    []int{2, 3, 6, 8, 12, 16},
		Title:      "Simple Division",
		TimeLimit:  30,
	},
	{
		ID:         "div-easy-2",
		Category:   model.Division,
		Difficulty: model.Easy,
		Template:   "_ ÷ _ = 5",
		Answers:    []int{20, 4},
		Options:    []int{4, 5, 10, 15, 20, 25},
		Title:      "Simple Division",
		TimeLimit:  30,
	},
	{
		ID:         "add-med-1",
		Category:   model.Addition,
		Difficulty: model.Medium,
		Template:   "_ + _ = 47",
		Answers:    []int{23, 24},
		Options:    []int{12, 15, 23, 24, 28, 35},
		Title:      "Two Digit Addition",
		TimeLimit:  45,
	},
	{
		ID:         "add-med-2",
		Category:   model.Addition,
		Difficulty: model.Medium,
		Template:   "_ + _ = 83",
		Answers:    []int{39, 44},
		Options:    []int{25, 32, 39, 44, 51, 58},
		Title:      "Two Digit Addition",
		TimeLimit:  45,
	},
	{
		ID:         "sub-med-1",
		Category:   model.Subtraction,
		Difficulty: model.Medium,
		Template:   "_ - _ = 27",
		Answers:    []int{65, 38},
		Options:    []int{25, 32, 38, 42, 50, 65},
		Title:      "Two Digit Subtraction",
		TimeLimit:  45,
	},
	{
		ID:         "mult-med-1",
		Category:   model.Multiplication,
		Difficulty: model.Medium,
		Template:   "_ × _ = 72",
		Answers:    []int{8, 9},
		Options:    []int{6, 7, 8, 9, 11, 12},
		Title:      "Times Tables",
		TimeLimit:  45,
	},
	{
		ID:         "mult-med-2",
		Category:   model.Multiplication,
		Difficulty: model.Medium,
		Template:   "_ × _ = 144",
		Answers:    []int{12, 12},
		Options:    []int{8, 9, 11, 12, 12, 16},
		Title:      "Times Tables",
		TimeLimit:  45,
	},
	{
		ID:         "div-med-1",
		Category:   model.Division,
		Difficulty: model.Medium,
		Template:   "_ ÷ _ = 9",
		Answers:    []int{81, 9},
		Options:    []int{7, 9, 11, 54, 72, 81},
		Title:      "Division Practice",
		TimeLimit:  45,
	},
	{
		ID:         "add-hard-1",
		Category:   model.Addition,
		Difficulty: model.Hard,
		Template:   "_ + _ = 157",
		Answers:    []int{89, 68},
		Options:    []int{45, 68, 73, 89, 92, 115},
		Title:      "Large Number Addition",
		TimeLimit:  60,
	},
	{
		ID:         "mult-hard-1",
		Category:   model.Multiplication,
		Difficulty: model.Hard,
		Template:   "_ × _ = 156",
		Answers:    []int{13, 12},
		Options:    []int{11, 12, 13, 14, 15, 16},
		Title:      "Advanced Multiplication",
		TimeLimit:  60,
	},
	{
		ID:         "mult-hard-2",
		Category:   model.Multiplication,
		Difficulty: model.Hard,
		Template:   "_ × _ = 221",
		Answers:    []int{13, 17},
		Options:    []int{11, 13, 15, 17, 19, 21},
		Title:      "Advanced Multiplication",
		TimeLimit:  60,
	},
	{
		ID:         "div-hard-1",
		Category:   model.Division,
		Difficulty: model.Hard,
		Template:   "_ ÷ _ = 14",
		Answers:    []int{168, 12},
		Options:    []int{11, 12, 13, 144, 156, 168},
		Title:      "Advanced Division",
		TimeLimit:  60,
	},
}
