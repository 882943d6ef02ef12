package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/models"
	"github.com/spf13/cobra"
)

var (
	rowsCriteria = models.DefaultCriteria()
	rowsJSON     bool
	rowsCSV      bool
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List blueprints matching the filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := container.Session.Search(rowsCriteria)
		if rowsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(models.RowList{Rows: rows, TotalCount: len(rows)})
		}

		if rowsCSV {
			return catalog.WriteCSV(os.Stdout, rows)
		}

		if len(rows) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("208"))).
			Headers("Blueprint Name", "Gun Name", "Weapon Category", "Status", "Pool")
		for _, row := range rows {
			t.Row(row.Blueprint, row.Weapon, row.Category, row.Status, row.Pool)
		}
		fmt.Println(t.Render())
		fmt.Printf("%d of %d blueprints\n", len(rows), len(container.Session.Rows()))
		return nil
	},
}

func init() {
	rowsCmd.Flags().StringVarP(&rowsCriteria.Search, "search", "s", "", "Case-insensitive text matched against blueprint and weapon names")
	rowsCmd.Flags().StringVar(&rowsCriteria.Status, "status", models.FilterAll, "Status filter")
	rowsCmd.Flags().StringVar(&rowsCriteria.Category, "category", models.FilterAll, "Category filter")
	rowsCmd.Flags().StringVar(&rowsCriteria.Pool, "pool", models.FilterAll, "Pool filter")
	rowsCmd.Flags().BoolVar(&rowsJSON, "json", false, "Print JSON instead of a table")
	rowsCmd.Flags().BoolVar(&rowsCSV, "csv", false, "Print CSV instead of a table")
	rowsCmd.MarkFlagsMutuallyExclusive("json", "csv")
}
