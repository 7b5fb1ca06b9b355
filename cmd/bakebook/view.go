// View command lists a whole collection, or one order's details.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
)

var viewCmd = &cobra.Command{
	Use:   "view TYPE [INDEX]",
	Short: "View the full client, pastry or order list",
	Long: `View lists all entities of the given type. For orders, an index may
be supplied to view a single order's details.

Example:
  bakebook view client
  bakebook view pastry
  bakebook view order
  bakebook view order 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	kind, err := command.ParseEntityKind(args[0])
	if err != nil {
		return err
	}
	index := command.NoIndex
	if len(args) == 2 {
		if kind != command.KindOrder {
			return fmt.Errorf("an index is only supported for orders")
		}
		index, err = parseIndexArg(args[1])
		if err != nil {
			return err
		}
	}
	res, err := command.View{Kind: kind, Index: index}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := printResult(res); err != nil {
		return err
	}

	if res.Focus.Index != command.NoIndex {
		printOrderDetails(res.Focus.Index)
		return nil
	}
	printMatches(kind)
	return nil
}

// printOrderDetails renders one displayed order with its line items.
func printOrderDetails(index int) {
	orders := mdl.FilteredOrders()
	if index < 0 || index >= len(orders) {
		return
	}
	order := orders[index]
	fmt.Println(order)
	for _, item := range order.Items() {
		fmt.Printf("  %s x%d = %s\n", item.Pastry().Name(), item.Quantity(), item.Subtotal().StringFixed(2))
	}
}
