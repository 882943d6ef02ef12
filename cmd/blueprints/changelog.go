package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changelogReverse bool

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show the update log",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := container.Session.Changelog()
		if len(entries) == 0 {
			fmt.Println("No updates yet. Stay tuned!")
			return nil
		}

		for i := range entries {
			entry := entries[i]
			if changelogReverse {
				entry = entries[len(entries)-1-i]
			}
			heading := entry.Version + " - " + entry.Date
			if entry.Author != "" {
				heading += " (" + entry.Author + ")"
			}
			fmt.Println(heading)
			for _, change := range entry.Changes {
				fmt.Printf("  • %s\n", change)
			}
		}
		return nil
	},
}

func init() {
	changelogCmd.Flags().BoolVar(&changelogReverse, "reverse", false, "Print entries in reverse source order")
}
