package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:     "preview <imageBase>",
	Short:   "Probe the preview image of a blueprint",
	Example: `  blueprints preview "/images/ram-7/Fire Tiger"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := container.Resolver.Resolve(cmd.Context(), container.Prober, args[0])
		if err != nil {
			return err
		}
		for _, attempt := range result.Attempts {
			fmt.Printf("tried %s\n", attempt)
		}
		if src := result.Src(); src != "" {
			fmt.Printf("found %s\n", src)
			return nil
		}
		fmt.Println("No Preview Available")
		return nil
	},
}
