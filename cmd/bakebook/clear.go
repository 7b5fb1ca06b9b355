// Clear command resets the whole book.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all clients, pastries and orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := command.Clear{}.Execute(mdl)
		if err != nil {
			return err
		}
		if err := saveBook(); err != nil {
			return err
		}
		return printResult(res)
	},
}
