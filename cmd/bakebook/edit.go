// Edit commands update clients, pastries and order statuses.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
	"github.com/ovenworks/bakebook/pkg/model"
)

var (
	editClientName    string
	editClientPhone   string
	editClientEmail   string
	editClientAddress string
	editClientTags    []string

	editPastryName  string
	editPastryPrice string

	editOrderStatus string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a client, pastry or order status",
}

var editClientCmd = &cobra.Command{
	Use:   "client INDEX",
	Short: "Edit the client at INDEX in the displayed list",
	Long: `Edit client overwrites the provided fields of the client at INDEX.
Editing a client also rewrites the customer details on that client's
existing orders.

Example:
  bakebook edit client 1 --phone 91234567 --email johnd@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEditClient,
}

var editPastryCmd = &cobra.Command{
	Use:   "pastry INDEX",
	Short: "Edit the pastry at INDEX in the displayed list",
	Long: `Edit pastry overwrites the provided fields of the pastry at INDEX.

Example:
  bakebook edit pastry 2 --name Croissant --price 3.50`,
	Args: cobra.ExactArgs(1),
	RunE: runEditPastry,
}

var editOrderCmd = &cobra.Command{
	Use:   "order INDEX",
	Short: "Set the status of the order at INDEX in the displayed list",
	Long: `Edit order sets the order's status. Valid statuses: pending,
processing, ready, delivered, cancelled.

Example:
  bakebook edit order 2 --status delivered`,
	Args: cobra.ExactArgs(1),
	RunE: runEditOrder,
}

func init() {
	editClientCmd.Flags().StringVar(&editClientName, "name", "", "new client name")
	editClientCmd.Flags().StringVar(&editClientPhone, "phone", "", "new phone number")
	editClientCmd.Flags().StringVar(&editClientEmail, "email", "", "new email address")
	editClientCmd.Flags().StringVar(&editClientAddress, "address", "", "new postal address")
	editClientCmd.Flags().StringArrayVar(&editClientTags, "tag", nil, "replacement tag set (repeatable)")

	editPastryCmd.Flags().StringVar(&editPastryName, "name", "", "new pastry name")
	editPastryCmd.Flags().StringVar(&editPastryPrice, "price", "", "new price")

	editOrderCmd.Flags().StringVar(&editOrderStatus, "status", "", "new order status (required)")
	_ = editOrderCmd.MarkFlagRequired("status")

	editCmd.AddCommand(editClientCmd)
	editCmd.AddCommand(editPastryCmd)
	editCmd.AddCommand(editOrderCmd)
}

func runEditClient(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	descriptor, err := buildPersonDescriptor(cmd)
	if err != nil {
		return err
	}
	res, err := command.Edit{Payload: command.EditClient{Index: index, Descriptor: descriptor}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

func runEditPastry(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	var descriptor command.PastryDescriptor
	if cmd.Flags().Changed("name") {
		name, err := model.NewName(editPastryName)
		if err != nil {
			return fmt.Errorf("invalid name %q: %w", editPastryName, err)
		}
		descriptor.Name = &name
	}
	if cmd.Flags().Changed("price") {
		price, err := model.NewPrice(editPastryPrice)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", editPastryPrice, err)
		}
		descriptor.Price = &price
	}
	res, err := command.Edit{Payload: command.EditPastry{Index: index, Descriptor: descriptor}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

func runEditOrder(cmd *cobra.Command, args []string) error {
	index, err := parseIndexArg(args[0])
	if err != nil {
		return err
	}
	status, err := model.ParseOrderStatus(editOrderStatus)
	if err != nil {
		return fmt.Errorf("invalid status %q: %w", editOrderStatus, err)
	}
	res, err := command.Edit{Payload: command.EditOrder{Index: index, Status: status}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

// buildPersonDescriptor collects the changed client flags into an edit
// descriptor. Only flags the user actually set are included.
func buildPersonDescriptor(cmd *cobra.Command) (command.PersonDescriptor, error) {
	var descriptor command.PersonDescriptor
	if cmd.Flags().Changed("name") {
		name, err := model.NewName(editClientName)
		if err != nil {
			return descriptor, fmt.Errorf("invalid name %q: %w", editClientName, err)
		}
		descriptor.Name = &name
	}
	if cmd.Flags().Changed("phone") {
		phone, err := model.NewPhone(editClientPhone)
		if err != nil {
			return descriptor, fmt.Errorf("invalid phone %q: %w", editClientPhone, err)
		}
		descriptor.Phone = &phone
	}
	if cmd.Flags().Changed("email") {
		email, err := model.NewEmail(editClientEmail)
		if err != nil {
			return descriptor, fmt.Errorf("invalid email %q: %w", editClientEmail, err)
		}
		descriptor.Email = &email
	}
	if cmd.Flags().Changed("address") {
		address, err := model.NewAddress(editClientAddress)
		if err != nil {
			return descriptor, fmt.Errorf("invalid address %q: %w", editClientAddress, err)
		}
		descriptor.Address = &address
	}
	if cmd.Flags().Changed("tag") {
		tags := make([]model.Tag, 0, len(editClientTags))
		for _, t := range editClientTags {
			tag, err := model.NewTag(t)
			if err != nil {
				return descriptor, fmt.Errorf("invalid tag %q: %w", t, err)
			}
			tags = append(tags, tag)
		}
		descriptor.Tags = tags
	}
	return descriptor, nil
}
