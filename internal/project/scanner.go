package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// reservedName is the tool's own directory name, excluded from scans
// so the dashboard does not list itself.
const reservedName = "devpad"

// Per-project assistant configuration markers.
const (
	docMarkerFile  = "CLAUDE.md"
	skillsDir      = ".claude/commands"
	mcpConfigFile  = ".mcp.json"
	docMarkerLabel = "claude.md"
)

// Scanner walks the configured scan roots and builds one Project per
// direct subdirectory.
type Scanner struct {
	// Roots are absolute directories to enumerate. A root that cannot
	// be listed is skipped.
	Roots []string

	// Docs resolves linked vault notes; nil disables doc linking.
	Docs *Linker

	Log *logrus.Logger
}

// NewScanner returns a scanner over the given roots. A nil logger is
// replaced with one that only reports warnings.
func NewScanner(roots []string, docs *Linker, log *logrus.Logger) *Scanner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)
	}
	return &Scanner{Roots: roots, Docs: docs, Log: log}
}

// Scan enumerates every root and returns all discovered projects,
// sorted most recently modified first. Scanning never fails: missing
// roots are skipped and per-project metadata failures degrade to
// absent values.
func (s *Scanner) Scan() []Project {
	var projects []Project

	for _, root := range s.Roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			s.Log.WithError(err).WithField("root", root).Debug("skipping unreadable scan root")
			continue
		}
		source := filepath.Base(root)

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if name == "" || name[0] == '.' || name == reservedName {
				continue
			}
			projects = append(projects, s.buildProject(name, filepath.Join(root, name), source))
		}
	}

	SortByModified(projects)
	return projects
}

func (s *Scanner) buildProject(name, path, source string) Project {
	p := Project{
		Name:   name,
		Path:   path,
		Source: source,
	}

	_, p.HasDoc = s.Docs.FindDoc(name)

	if isGitRepository(path) {
		info := InspectGit(path)
		p.Branch = info.Branch
		p.Dirty = info.Dirty
		p.Modified = info.LastCommit
	} else {
		p.Modified = newestChildMtime(path)
	}

	p.ConfigLabels = s.configLabels(path)
	return p
}

// isGitRepository checks if a directory contains a .git folder or file.
func isGitRepository(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// newestChildMtime returns the newest modification time among the
// direct children of path, skipping dot files and .DS_Store. Only
// direct children are considered, never the full tree. Returns nil
// when no eligible child yields a time.
func newestChildMtime(path string) *time.Time {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	var newest *time.Time
	for _, entry := range entries {
		name := entry.Name()
		if name == "" || name[0] == '.' || name == ".DS_Store" {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		if newest == nil || mt.After(*newest) {
			newest = &mt
		}
	}
	return newest
}

// configLabels detects per-project assistant configuration in fixed
// order: doc marker file, skill definitions, MCP servers.
func (s *Scanner) configLabels(path string) []string {
	var labels []string

	if _, err := os.Stat(filepath.Join(path, docMarkerFile)); err == nil {
		labels = append(labels, docMarkerLabel)
	}

	if entries, err := os.ReadDir(filepath.Join(path, filepath.FromSlash(skillsDir))); err == nil && len(entries) > 0 {
		labels = append(labels, fmt.Sprintf("%dskills", len(entries)))
	}

	mcpPath := filepath.Join(path, mcpConfigFile)
	if _, err := os.Stat(mcpPath); err == nil {
		labels = append(labels, fmt.Sprintf("%dmcp", s.countMCPServers(mcpPath)))
	}

	return labels
}

// countMCPServers reads an MCP config file and counts the entries of
// its mcpServers object. A file that exists but cannot be read or
// parsed, or that lacks the key, counts as 1.
func (s *Scanner) countMCPServers(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		s.Log.WithError(err).WithField("file", path).Debug("unreadable MCP config")
		return 1
	}

	var cfg struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.Log.WithError(err).WithField("file", path).Debug("unparsable MCP config")
		return 1
	}
	if cfg.MCPServers == nil {
		return 1
	}
	return len(cfg.MCPServers)
}
