package tui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpad-tools/devpad/internal/launch"
)

// openFinder opens the selected project in the system file browser.
// Fire-and-forget: the dashboard does not depend on it succeeding.
func (m *Model) openFinder() {
	if p, ok := m.sel.Selected(); ok {
		launch.Spawn(m.cfg.Opener, p.Path)
	}
}

// openDoc opens the vault note linked to the selected project, if one
// exists. The note is re-resolved rather than trusted from scan time:
// it may have been created or renamed since.
func (m *Model) openDoc() {
	p, ok := m.sel.Selected()
	if !ok {
		return
	}
	docPath, ok := m.docs.FindDoc(p.Name)
	if !ok {
		return
	}
	stem := strings.TrimSuffix(filepath.Base(docPath), ".md")
	launch.Spawn(m.cfg.Opener, obsidianURI(m.cfg.Vault.Name, m.cfg.Vault.Subpath, stem))
}

// launchAssistant suspends the TUI, runs the assistant CLI in the
// selected project's directory, and waits for it to exit. ExecProcess
// restores the alternate screen and raw mode on every path; a non-zero
// exit becomes a status-line warning rather than an error.
func (m Model) launchAssistant() tea.Cmd {
	p, ok := m.sel.Selected()
	if !ok {
		return nil
	}
	command := m.cfg.Assistant.Command
	cmd := launch.Blocking(p.Path, command, m.cfg.Assistant.Args...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return assistantDoneMsg{command: command, err: err}
	})
}

// obsidianURI builds a deep link to a note inside the vault, encoding
// path separators and spaces the way Obsidian expects.
func obsidianURI(vault, subpath, stem string) string {
	file := stem
	if subpath != "" {
		file = subpath + "/" + stem
	}
	file = strings.NewReplacer("/", "%2F", " ", "%20").Replace(file)
	return "obsidian://open?vault=" + vault + "&file=" + file
}
