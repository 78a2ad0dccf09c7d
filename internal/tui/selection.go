package tui

import (
	"strings"

	"github.com/devpad-tools/devpad/internal/project"
)

// Selection owns the scanned project collection, the active text
// filter, and the cursor. The collection itself is never mutated or
// re-sorted; filtering produces index views into it.
//
// Two states: browsing (default) and searching. While searching,
// printable input grows the filter instead of acting as command keys.
type Selection struct {
	projects  []project.Project
	filter    string
	searching bool
	cursor    int // index into the filtered view; -1 when it is empty
}

// NewSelection wraps an already-sorted project collection with the
// cursor on the first row.
func NewSelection(projects []project.Project) *Selection {
	s := &Selection{projects: projects}
	s.resetCursor()
	return s
}

// Projects returns the backing collection in scan order.
func (s *Selection) Projects() []project.Project { return s.projects }

// Filter returns the active filter text; empty means no filtering.
func (s *Selection) Filter() string { return s.filter }

// Searching reports whether printable input currently edits the filter.
func (s *Selection) Searching() bool { return s.searching }

// Cursor returns the cursor position within the filtered view, or -1
// when the view is empty.
func (s *Selection) Cursor() int { return s.cursor }

// FilteredIndices returns the indices of projects whose name contains
// the filter text case-insensitively, preserving collection order. An
// empty filter passes everything.
func (s *Selection) FilteredIndices() []int {
	query := strings.ToLower(s.filter)
	indices := make([]int, 0, len(s.projects))
	for i, p := range s.projects {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Move shifts the cursor by delta rows, clamping at both ends. On an
// empty filtered view the cursor becomes -1.
func (s *Selection) Move(delta int) {
	n := len(s.FilteredIndices())
	if n == 0 {
		s.cursor = -1
		return
	}
	next := s.cursor + delta
	if s.cursor < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	s.cursor = next
}

// Selected maps the cursor through the filtered view into the backing
// collection.
func (s *Selection) Selected() (project.Project, bool) {
	if s.cursor < 0 {
		return project.Project{}, false
	}
	filtered := s.FilteredIndices()
	if s.cursor >= len(filtered) {
		return project.Project{}, false
	}
	return s.projects[filtered[s.cursor]], true
}

// StartSearch enters search mode. The filter is kept as-is and the
// cursor returns to the first row.
func (s *Selection) StartSearch() {
	s.searching = true
	s.resetCursor()
}

// Type appends printable input to the filter while searching.
func (s *Selection) Type(runes []rune) {
	if !s.searching {
		return
	}
	s.filter += string(runes)
	s.resetCursor()
}

// Backspace removes the last filter rune. Emptying the filter leaves
// search mode entirely.
func (s *Selection) Backspace() {
	if !s.searching {
		return
	}
	if s.filter != "" {
		r := []rune(s.filter)
		s.filter = string(r[:len(r)-1])
	}
	if s.filter == "" {
		s.searching = false
	}
	s.resetCursor()
}

// CancelSearch leaves search mode and clears the filter.
func (s *Selection) CancelSearch() {
	s.searching = false
	s.filter = ""
	s.resetCursor()
}

// resetCursor puts the cursor on the first row of the current filtered
// view, or -1 when the view is empty.
func (s *Selection) resetCursor() {
	if len(s.FilteredIndices()) == 0 {
		s.cursor = -1
		return
	}
	s.cursor = 0
}
