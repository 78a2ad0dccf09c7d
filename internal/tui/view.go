package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/devpad-tools/devpad/internal/project"
)

const defaultWidth = 80

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.viewList(width))
	b.WriteString(ruleStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	if m.sel.Searching() {
		return searchPromptStyle.Render(" / ") +
			nameStyle.Render(m.sel.Filter()) +
			searchPromptStyle.Render("▌")
	}
	count := len(m.sel.FilteredIndices())
	return titleStyle.Render(" devpad ") +
		mutedStyle.Render(fmt.Sprintf(" %d projects", count))
}

func (m Model) viewList(width int) string {
	filtered := m.sel.FilteredIndices()
	if len(filtered) == 0 {
		if len(m.sel.Projects()) == 0 {
			return mutedStyle.Render("  No projects found") + "\n"
		}
		return mutedStyle.Render("  No matching projects") + "\n"
	}

	visible := m.height - 4
	if visible < 1 {
		visible = len(filtered)
	}
	offset := 0
	if cursor := m.sel.Cursor(); cursor >= visible {
		offset = cursor - visible + 1
	}

	var b strings.Builder
	for row := offset; row < len(filtered) && row < offset+visible; row++ {
		p := m.sel.Projects()[filtered[row]]
		b.WriteString(m.renderRow(p, width, row == m.sel.Cursor()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow lays out one project line: source column, name with the
// filter match highlighted, branch with dirty marker, config labels,
// doc tag, and the age right-aligned against the terminal edge.
func (m Model) renderRow(p project.Project, width int, selected bool) string {
	sourceCol := fmt.Sprintf(" %10s  ", p.Source)
	age := project.Relative(p.Modified)

	branch := ""
	if p.Branch != "" {
		branch = "  " + p.Branch
		if p.Dirty {
			branch += "*"
		}
	}

	labels := ""
	if len(p.ConfigLabels) > 0 {
		labels = "  " + strings.Join(p.ConfigLabels, " ")
	}

	docTag := ""
	if p.HasDoc {
		docTag = " doc"
	}

	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	left := prefix + sourceCol + p.Name + branch + labels + docTag
	padding := width - runewidth.StringWidth(left) - runewidth.StringWidth(age) - 2
	if padding < 1 {
		padding = 1
	}

	nameRendered := highlightMatch(p.Name, m.sel.Filter())
	if selected {
		nameRendered = selectedStyle.Render(p.Name)
	}

	var b strings.Builder
	if selected {
		b.WriteString(titleStyle.Render(prefix))
	} else {
		b.WriteString(prefix)
	}
	b.WriteString(mutedStyle.Render(sourceCol))
	b.WriteString(nameRendered)
	b.WriteString(branchStyle.Render(branch))
	b.WriteString(mutedStyle.Render(labels))
	b.WriteString(docStyle.Render(docTag))
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(mutedStyle.Render(age))
	return b.String()
}

func (m Model) viewFooter() string {
	if m.status != "" {
		return warnStyle.Render(" " + m.status)
	}
	if m.sel.Searching() {
		return " " + m.help.View(searchKeys)
	}
	return " " + m.help.View(browseKeys)
}

// highlightMatch highlights the first occurrence of the filter text
// within name, matching case-insensitively.
func highlightMatch(name, filter string) string {
	if filter == "" {
		return nameStyle.Render(name)
	}

	index := strings.Index(strings.ToLower(name), strings.ToLower(filter))
	if index == -1 {
		return nameStyle.Render(name)
	}

	before := name[:index]
	match := name[index : index+len(filter)]
	after := name[index+len(filter):]
	return nameStyle.Render(before) + matchStyle.Render(match) + nameStyle.Render(after)
}
