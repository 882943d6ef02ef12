package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/meur/blueprintlabs/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive blueprint browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		model := tui.NewModel(tui.Options{
			Session:     container.Session,
			Resolver:    container.Resolver,
			Prober:      container.Prober,
			SearchDelay: container.Config.Filter.SearchDelay,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}
