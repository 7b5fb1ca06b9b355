// Find command filters a list by name keywords and prints the matches.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
)

var findCmd = &cobra.Command{
	Use:   "find TYPE KEYWORD...",
	Short: "Find entities whose name contains any of the keywords",
	Long: `Find filters the displayed list of the given type to entries whose
name contains any keyword as a whole word, case-insensitively. Orders
match on the customer's name.

Example:
  bakebook find client alice bob
  bakebook find pastry croissant`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	kind, err := command.ParseEntityKind(args[0])
	if err != nil {
		return err
	}
	res, err := command.Find{Kind: kind, Keywords: args[1:]}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := printResult(res); err != nil {
		return err
	}
	printMatches(kind)
	return nil
}

// printMatches lists the filtered entries with their one-based indices.
func printMatches(kind command.EntityKind) {
	switch kind {
	case command.KindClient:
		for i, p := range mdl.FilteredPersons() {
			fmt.Printf("%d. %s\n", i+1, p)
		}
	case command.KindPastry:
		for i, p := range mdl.FilteredPastries() {
			fmt.Printf("%d. %s\n", i+1, p)
		}
	case command.KindOrder:
		for i, o := range mdl.FilteredOrders() {
			fmt.Printf("%d. %s\n", i+1, o)
		}
	}
}
