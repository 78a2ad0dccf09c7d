// Package tui implements the interactive project dashboard: a filtered
// list of discovered projects with actions to open them in a file
// browser, jump to their vault note, or launch an assistant session.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpad-tools/devpad/internal/config"
	"github.com/devpad-tools/devpad/internal/project"
)

// Model is the bubbletea model for the dashboard. The project
// collection is scanned once before the program starts and never
// refreshed; all mutation happens in Selection.
type Model struct {
	cfg  *config.Config
	sel  *Selection
	docs *project.Linker
	help help.Model

	width  int
	height int

	// status carries a non-fatal warning from the last assistant
	// launch, cleared on the next key press.
	status string
}

// assistantDoneMsg reports the outcome of a blocking assistant run.
type assistantDoneMsg struct {
	command string
	err     error
}

// NewModel builds the dashboard over an already-sorted collection.
func NewModel(cfg *config.Config, projects []project.Project, docs *project.Linker) Model {
	return Model{
		cfg:  cfg,
		sel:  NewSelection(projects),
		docs: docs,
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case assistantDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.command, msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if m.sel.Searching() {
			return m.updateSearching(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browseKeys.Finder):
		m.openFinder()
	case key.Matches(msg, browseKeys.Doc):
		m.openDoc()
	case key.Matches(msg, browseKeys.Search):
		m.sel.StartSearch()
	case key.Matches(msg, browseKeys.Up):
		m.sel.Move(-1)
	case key.Matches(msg, browseKeys.Down):
		m.sel.Move(1)
	case key.Matches(msg, browseKeys.Launch):
		return m, m.launchAssistant()
	}
	return m, nil
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.sel.CancelSearch()
	case tea.KeyBackspace:
		m.sel.Backspace()
	case tea.KeyEnter:
		return m, m.launchAssistant()
	case tea.KeyUp:
		m.sel.Move(-1)
	case tea.KeyDown:
		m.sel.Move(1)
	case tea.KeySpace:
		m.sel.Type([]rune{' '})
	case tea.KeyRunes:
		m.sel.Type(msg.Runes)
	}
	return m, nil
}
