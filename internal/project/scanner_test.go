package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func newTestScanner(roots ...string) *Scanner {
	// Empty NotesDir: no project has a linked note.
	return NewScanner(roots, &Linker{}, nil)
}

func TestScan(t *testing.T) {
	t.Run("two roots, untracked projects", func(t *testing.T) {
		appRoot := filepath.Join(t.TempDir(), "app")
		playRoot := filepath.Join(t.TempDir(), "playground")

		old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		writeFile(t, filepath.Join(appRoot, "alpha", "main.go"), "package main\n")
		writeFile(t, filepath.Join(appRoot, "alpha", "notes.txt"), "x\n")
		writeFile(t, filepath.Join(playRoot, "beta", "beta.py"), "pass\n")
		if err := os.Chtimes(filepath.Join(appRoot, "alpha", "main.go"), recent, recent); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		if err := os.Chtimes(filepath.Join(appRoot, "alpha", "notes.txt"), old, old); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		if err := os.Chtimes(filepath.Join(playRoot, "beta", "beta.py"), old, old); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		projects := newTestScanner(appRoot, playRoot).Scan()
		if len(projects) != 2 {
			t.Fatalf("got %d projects, want 2", len(projects))
		}

		// Sorted newest first: alpha (recent) before beta (old).
		if projects[0].Name != "alpha" || projects[1].Name != "beta" {
			t.Fatalf("got order %q, %q; want alpha, beta", projects[0].Name, projects[1].Name)
		}

		for _, p := range projects {
			if p.Branch != "" {
				t.Errorf("%s: Branch = %q, want empty for untracked project", p.Name, p.Branch)
			}
			if p.Dirty {
				t.Errorf("%s: expected Dirty = false", p.Name)
			}
			if p.HasDoc {
				t.Errorf("%s: expected HasDoc = false", p.Name)
			}
			if p.Modified == nil {
				t.Errorf("%s: expected Modified from child mtimes", p.Name)
			}
		}

		if !projects[0].Modified.Equal(recent) {
			t.Errorf("alpha Modified = %v, want newest child mtime %v", projects[0].Modified, recent)
		}
		if projects[0].Source != "app" || projects[1].Source != "playground" {
			t.Errorf("sources = %q, %q; want app, playground", projects[0].Source, projects[1].Source)
		}
	})

	t.Run("excludes dot dirs, files, and the tool itself", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "app")
		writeFile(t, filepath.Join(root, "visible", "f"), "x")
		writeFile(t, filepath.Join(root, ".hidden", "f"), "x")
		writeFile(t, filepath.Join(root, "devpad", "f"), "x")
		writeFile(t, filepath.Join(root, "loose-file"), "x")

		projects := newTestScanner(root).Scan()
		if len(projects) != 1 || projects[0].Name != "visible" {
			t.Fatalf("got %v, want only \"visible\"", projects)
		}
	})

	t.Run("missing root is skipped silently", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "app")
		writeFile(t, filepath.Join(root, "proj", "f"), "x")

		projects := newTestScanner(filepath.Join(root, "nope"), root).Scan()
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
	})

	t.Run("mtime fallback ignores dot files and has no recursion", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "app")
		proj := filepath.Join(root, "proj")
		old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		writeFile(t, filepath.Join(proj, "a.txt"), "x")
		writeFile(t, filepath.Join(proj, ".env"), "x")
		if err := os.Chtimes(filepath.Join(proj, "a.txt"), old, old); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		// Dot file newer than everything else must not win.
		if err := os.Chtimes(filepath.Join(proj, ".env"), newer, newer); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		projects := newTestScanner(root).Scan()
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		if projects[0].Modified == nil || !projects[0].Modified.Equal(old) {
			t.Errorf("Modified = %v, want %v", projects[0].Modified, old)
		}
	})

	t.Run("empty project has unknown modified time", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "app")
		if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		projects := newTestScanner(root).Scan()
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		if projects[0].Modified != nil {
			t.Errorf("Modified = %v, want nil", projects[0].Modified)
		}
	})

	t.Run("linked docs detected", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "app")
		notes := t.TempDir()
		writeFile(t, filepath.Join(root, "daily-digest", "f"), "x")
		writeFile(t, filepath.Join(notes, "Daily Digest.md"), "# note")

		scanner := NewScanner([]string{root}, &Linker{NotesDir: notes}, nil)
		projects := scanner.Scan()
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		if !projects[0].HasDoc {
			t.Error("expected HasDoc = true")
		}
	})
}

func TestConfigLabels(t *testing.T) {
	newProject := func(t *testing.T) (string, string) {
		root := filepath.Join(t.TempDir(), "app")
		proj := filepath.Join(root, "proj")
		writeFile(t, filepath.Join(proj, "keep"), "x")
		return root, proj
	}

	scan := func(t *testing.T, root string) Project {
		t.Helper()
		projects := newTestScanner(root).Scan()
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		return projects[0]
	}

	t.Run("no configuration", func(t *testing.T) {
		root, _ := newProject(t)
		if labels := scan(t, root).ConfigLabels; len(labels) != 0 {
			t.Errorf("ConfigLabels = %v, want empty", labels)
		}
	})

	t.Run("detection order is doc, skills, mcp", func(t *testing.T) {
		root, proj := newProject(t)
		writeFile(t, filepath.Join(proj, "CLAUDE.md"), "# guide")
		writeFile(t, filepath.Join(proj, ".claude", "commands", "fix.md"), "x")
		writeFile(t, filepath.Join(proj, ".claude", "commands", "ship.md"), "x")
		writeFile(t, filepath.Join(proj, ".mcp.json"), `{"mcpServers":{"fs":{},"web":{},"db":{}}}`)

		labels := scan(t, root).ConfigLabels
		want := []string{"claude.md", "2skills", "3mcp"}
		if len(labels) != len(want) {
			t.Fatalf("ConfigLabels = %v, want %v", labels, want)
		}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("ConfigLabels[%d] = %q, want %q", i, labels[i], want[i])
			}
		}
	})

	t.Run("empty skills directory omitted", func(t *testing.T) {
		root, proj := newProject(t)
		if err := os.MkdirAll(filepath.Join(proj, ".claude", "commands"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if labels := scan(t, root).ConfigLabels; len(labels) != 0 {
			t.Errorf("ConfigLabels = %v, want empty", labels)
		}
	})

	t.Run("unparsable mcp config still labeled", func(t *testing.T) {
		root, proj := newProject(t)
		writeFile(t, filepath.Join(proj, ".mcp.json"), "{not json")

		labels := scan(t, root).ConfigLabels
		if len(labels) != 1 || labels[0] != "1mcp" {
			t.Errorf("ConfigLabels = %v, want [1mcp]", labels)
		}
	})

	t.Run("mcp config without server map counts as one", func(t *testing.T) {
		root, proj := newProject(t)
		writeFile(t, filepath.Join(proj, ".mcp.json"), `{"other":true}`)

		labels := scan(t, root).ConfigLabels
		if len(labels) != 1 || labels[0] != "1mcp" {
			t.Errorf("ConfigLabels = %v, want [1mcp]", labels)
		}
	})
}

func TestSortByModified(t *testing.T) {
	at := func(secs int64) *time.Time {
		tm := time.Unix(secs, 0)
		return &tm
	}

	projects := []Project{
		{Name: "a"},
		{Name: "b", Modified: at(100)},
		{Name: "c", Modified: at(50)},
		{Name: "d"},
		{Name: "e", Modified: at(200)},
	}
	SortByModified(projects)

	wantNames := []string{"e", "b", "c", "a", "d"}
	for i, want := range wantNames {
		if projects[i].Name != want {
			t.Errorf("position %d = %q, want %q", i, projects[i].Name, want)
		}
	}
	if projects[3].Modified != nil || projects[4].Modified != nil {
		t.Error("unknown-time projects must sort to the tail")
	}
}
