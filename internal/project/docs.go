package project

import (
	"os"
	"path/filepath"
	"strings"
)

// Linker resolves vault notes that match projects by fuzzy name.
type Linker struct {
	// NotesDir is the directory holding per-project notes. An empty or
	// unreadable directory means no project has a linked note.
	NotesDir string
}

// FindDoc returns the path of the first .md note whose normalized stem
// equals the normalized project name. Matching is case and punctuation
// insensitive but otherwise exact. Any failure to list the notes
// directory resolves to "not found" rather than an error.
func (l *Linker) FindDoc(projectName string) (string, bool) {
	if l == nil || l.NotesDir == "" {
		return "", false
	}

	entries, err := os.ReadDir(l.NotesDir)
	if err != nil {
		return "", false
	}

	want := Normalize(projectName)
	for _, entry := range entries {
		stem, ok := strings.CutSuffix(entry.Name(), ".md")
		if !ok {
			continue
		}
		if Normalize(stem) == want {
			return filepath.Join(l.NotesDir, entry.Name()), true
		}
	}
	return "", false
}
