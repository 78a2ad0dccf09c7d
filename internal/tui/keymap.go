package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap defines the key bindings available while browsing.
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Launch key.Binding
	Finder key.Binding
	Doc    key.Binding
	Search key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Launch, k.Finder, k.Doc, k.Search, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Launch},
		{k.Finder, k.Doc, k.Search, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓/jk", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "down"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open claude"),
	),
	Finder: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finder"),
	),
	Doc: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "docs"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// searchKeyMap defines the bindings shown while the filter is being
// edited. Printable runes are handled directly by the model.
type searchKeyMap struct {
	Cancel key.Binding
	Launch key.Binding
	Up     key.Binding
	Down   key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Launch, k.Up}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Cancel, k.Launch, k.Up, k.Down}}
}

var searchKeys = searchKeyMap{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑↓", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
}
