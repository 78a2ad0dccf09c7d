package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/devpad-tools/devpad/internal/config"
	"github.com/devpad-tools/devpad/internal/project"
)

var listDirtyOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Scan and print discovered projects without the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		projects, _ := scanProjects(cfg)
		if listDirtyOnly {
			projects = filterDirty(projects)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		printProjectsTable(projects)
		return nil
	},
}

func filterDirty(projects []project.Project) []project.Project {
	var dirty []project.Project
	for _, p := range projects {
		if p.Dirty {
			dirty = append(dirty, p)
		}
	}
	return dirty
}

func printProjectsTable(projects []project.Project) {
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	branchStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

	// Column widths from content so the plain-text table stays aligned.
	maxSource, maxName := len("SOURCE"), len("NAME")
	for _, p := range projects {
		if len(p.Source) > maxSource {
			maxSource = len(p.Source)
		}
		if len(p.Name) > maxName {
			maxName = len(p.Name)
		}
	}

	fmt.Printf("%-*s  %-*s  %-12s  %-18s  %s\n", maxSource, "SOURCE", maxName, "NAME", "BRANCH", "CONFIG", "AGE")

	for _, p := range projects {
		branch := p.Branch
		if p.Dirty && branch != "" {
			branch += "*"
		}
		labels := strings.Join(p.ConfigLabels, " ")
		if p.HasDoc {
			if labels != "" {
				labels += " "
			}
			labels += "doc"
		}

		fmt.Printf("%s  %s  %s  %-18s  %s\n",
			sourceStyle.Render(fmt.Sprintf("%-*s", maxSource, p.Source)),
			nameStyle.Render(fmt.Sprintf("%-*s", maxName, p.Name)),
			branchStyle.Render(fmt.Sprintf("%-12s", branch)),
			labels,
			project.Relative(p.Modified))
	}
}

func init() {
	listCmd.Flags().BoolVar(&listDirtyOnly, "dirty-only", false, "Only show projects with uncommitted changes")
}
