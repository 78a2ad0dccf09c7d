// Package project discovers local project directories and enriches
// them with version-control and documentation metadata.
package project

import (
	"sort"
	"time"
)

// Project holds structured information about one discovered project
// directory. Records are immutable after the scan that produced them.
type Project struct {
	Name   string // base name of the directory
	Path   string // full, absolute path to the project
	Source string // final path segment of the scan root that produced it

	// Modified is the most recent meaningful activity: the last commit
	// time for git projects, the newest direct-child mtime otherwise.
	// nil means unknown.
	Modified *time.Time

	HasDoc bool   // a fuzzy-matching vault note existed at scan time
	Branch string // current git branch, "" when absent or detached
	Dirty  bool   // uncommitted changes; always false outside git

	// ConfigLabels are short tags for detected assistant configuration,
	// in detection order: doc marker, skill count, MCP server count.
	ConfigLabels []string
}

// SortByModified orders projects most recently modified first. Projects
// with unknown modification time sort to the end; their relative order
// is preserved.
func SortByModified(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i].Modified, projects[j].Modified
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
