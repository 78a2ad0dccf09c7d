package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/devpad-tools/devpad/internal/config"
	"github.com/devpad-tools/devpad/internal/project"
	"github.com/devpad-tools/devpad/internal/tui"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "devpad",
	Short: "Terminal dashboard for local project directories",
	Long: `devpad scans your project directories, enriches each project with git
and vault-note metadata, and shows them in an interactive dashboard.
From there you can filter by name, open a project in the file browser,
jump to its linked note, or launch an assistant session inside it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		projects, docs := scanProjects(cfg)

		m := tui.NewModel(cfg, projects, docs)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

// scanProjects performs the one-shot synchronous scan the dashboard is
// built from. Scanning never fails; missing roots and broken metadata
// degrade to absent fields.
func scanProjects(cfg *config.Config) ([]project.Project, *project.Linker) {
	log := newLogger()

	roots := make([]string, 0, len(cfg.ScanDirs))
	for _, dir := range cfg.ScanDirs {
		roots = append(roots, config.ExpandPath(dir))
	}

	docs := &project.Linker{NotesDir: cfg.VaultNotesDir()}
	scanner := project.NewScanner(roots, docs, log)
	return scanner.Scan(), docs
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/devpad/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log discovery details to stderr")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
