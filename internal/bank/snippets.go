package bank

import "github.com/verte-zerg/drills/internal/model"

// Snippets is the built-in typing snippet table.
var Snippets = []model.Snippet{
	{
		ID:         "js-async-fetch",
		Language:   "javascript",
		Category:   "javascript",
		Difficulty: model.Medium,
		Code: "const fetchUser = async (id) => {\n" +
			"  const response = await fetch(`/api/users/${id}`);\n" +
			"  const data = await response.json();\n" +
			"  return data;\n" +
			"};",
		Title: "Async Fetch Function",
	},
	{
		ID:         "react-usestate",
		Language:   "typescript",
		Category:   "react",
		Difficulty: model.Easy,
		Code: "const [count, setCount] = useState<number>(0);\n" +
			"\n" +
			"const increment = () => {\n" +
			"  setCount(prev => prev + 1);\n" +
			"};",
		Title: "React useState Hook",
	},
	{
		ID:         "ts-arrow-function",
		Language:   "typescript",
		Category:   "typescript",
		Difficulty: model.Easy,
		Code: "const add = (a: number, b: number): number => {\n" +
			"  return a + b;\n" +
			"};",
		Title: "TypeScript Arrow Function",
	},
	{
		ID:         "go-error-wrap",
		Language:   "go",
		Category:   "go",
		Difficulty: model.Easy,
		Code: "func load(path string) ([]byte, error) {\n" +
			"\tdata, err := os.ReadFile(path)\n" +
			"\tif err != nil {\n" +
			"\t\treturn nil, fmt.Errorf(\"failed to read %s: %w\", path, err)\n" +
			"\t}\n" +
			"\treturn data, nil\n" +
			"}",
		Title: "Go Error Wrapping",
	},
	{
		ID:         "go-worker-loop",
		Language:   "go",
		Category:   "go",
		Difficulty: model.Medium,
		Code: "for job := range jobs {\n" +
			"\tselect {\n" +
			"\tcase <-ctx.Done():\n" +
			"\t\treturn ctx.Err()\n" +
			"\tcase results <- process(job):\n" +
			"\t}\n" +
			"}",
		Title: "Go Worker Loop",
	},
}
