package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "List the distinct pools in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, pool := range container.Session.Pools() {
			fmt.Println(pool)
		}
		return nil
	},
}
