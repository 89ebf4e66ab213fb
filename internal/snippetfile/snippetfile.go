// Package snippetfile loads typing snippets from source files on disk.
package snippetfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/verte-zerg/drills/internal/model"
)

// IDPrefix marks snippets loaded from files.
const IDPrefix = "file:"

var languages = map[string]string{
	".go":  "go",
	".js":  "javascript",
	".jsx": "javascript",
	".ts":  "typescript",
	".tsx": "react",
	".py":  "python",
	".rs":  "rust",
	".c":   "c",
	".sh":  "shell",
}

// LanguageForPath returns the language implied by a file extension, or ""
// for files that are not recognised.
func LanguageForPath(path string) string {
	return languages[strings.ToLower(filepath.Ext(path))]
}

// LoadSnippet reads one snippet file. Line endings are normalised and
// trailing blank lines dropped.
func LoadSnippet(path string) (model.Snippet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snippet{}, err
	}
	code := strings.ReplaceAll(string(data), "\r\n", "\n")
	code = strings.TrimRight(code, "\n\t ")
	if strings.TrimSpace(code) == "" {
		return model.Snippet{}, fmt.Errorf("snippet %s is empty", path)
	}
	name := filepath.Base(path)
	lang := LanguageForPath(path)
	return model.Snippet{
		ID:       IDPrefix + name,
		Language: lang,
		Category: lang,
		Code:     code,
		Title:    strings.TrimSuffix(name, filepath.Ext(name)),
	}, nil
}

// LoadDir loads every recognised snippet file in dir, sorted by name.
// A missing directory yields no snippets and no error.
func LoadDir(dir string) ([]model.Snippet, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snippets directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || LanguageForPath(entry.Name()) == "" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	snippets := make([]model.Snippet, 0, len(names))
	for _, name := range names {
		s, err := LoadSnippet(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load snippet: %w", err)
		}
		snippets = append(snippets, s)
	}
	return snippets, nil
}
