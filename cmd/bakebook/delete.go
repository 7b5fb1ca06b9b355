// Delete command removes a client, pastry or order by displayed index.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
)

var deleteCmd = &cobra.Command{
	Use:   "delete TYPE INDEX",
	Short: "Delete the entity at INDEX in the displayed list",
	Long: `Delete removes the client, pastry or order at the given index in the
currently displayed list.

Example:
  bakebook delete client 1
  bakebook delete pastry 2
  bakebook delete order 1`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	kind, err := command.ParseEntityKind(args[0])
	if err != nil {
		return err
	}
	index, err := parseIndexArg(args[1])
	if err != nil {
		return err
	}
	res, err := command.Delete{Kind: kind, Index: index}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}
