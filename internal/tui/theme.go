package tui

import "github.com/charmbracelet/lipgloss"

// Styles used by the dashboard view. Kept in one place so the list,
// header, and footer stay visually consistent.
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	docStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	searchPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	matchStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Reverse(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Background(lipgloss.Color("8")).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
