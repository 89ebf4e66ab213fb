package snippetfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_loop.go", "for i := range n {\r\n\tuse(i)\r\n}\r\n\r\n")
	writeFile(t, dir, "a.ts", "const a = 1;\n")
	writeFile(t, dir, "README.md", "# not a snippet\n")

	snippets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(snippets))
	}
	if snippets[0].ID != "file:a.ts" || snippets[0].Language != "typescript" {
		t.Fatalf("unexpected first snippet: %+v", snippets[0])
	}
	loop := snippets[1]
	if loop.Code != "for i := range n {\n\tuse(i)\n}" {
		t.Fatalf("unexpected normalised code: %q", loop.Code)
	}
	if loop.Title != "b_loop" || loop.Category != "go" {
		t.Fatalf("unexpected metadata: %+v", loop)
	}
}

func TestLoadDirMissing(t *testing.T) {
	snippets, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil || snippets != nil {
		t.Fatalf("expected no snippets and no error, got %v %v", snippets, err)
	}
}

func TestLoadSnippetRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.go", "\n\n  \n")
	if _, err := LoadSnippet(filepath.Join(dir, "empty.go")); err == nil {
		t.Fatalf("expected error for blank snippet")
	}
}
