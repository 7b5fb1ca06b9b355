// Add commands create clients, pastries and orders.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/command"
	"github.com/ovenworks/bakebook/pkg/model"
)

var (
	addClientName    string
	addClientPhone   string
	addClientEmail   string
	addClientAddress string
	addClientTags    []string

	addPastryName  string
	addPastryPrice string

	addOrderClient int
	addOrderItems  []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client, pastry or order",
}

var addClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Add a new client",
	Long: `Add client creates a new client record.

Example:
  bakebook add client --name "John Doe" --phone 91234567 \
    --email johnd@example.com --address "311 Clementi Ave 2" --tag regular`,
	RunE: runAddClient,
}

var addPastryCmd = &cobra.Command{
	Use:   "pastry",
	Short: "Add a new pastry",
	Long: `Add pastry creates a new product with a name and price.

Example:
  bakebook add pastry --name Croissant --price 4.50`,
	RunE: runAddPastry,
}

var addOrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Add a new order",
	Long: `Add order commits an order for the client at the given index in the
displayed client list. Each --item names a pastry from the displayed
pastry list and a quantity.

Example:
  bakebook add order --client 1 --item "Croissant:2" --item "Bagel:3"`,
	RunE: runAddOrder,
}

func init() {
	addClientCmd.Flags().StringVar(&addClientName, "name", "", "client name (required)")
	addClientCmd.Flags().StringVar(&addClientPhone, "phone", "", "phone number (required)")
	addClientCmd.Flags().StringVar(&addClientEmail, "email", "", "email address (required)")
	addClientCmd.Flags().StringVar(&addClientAddress, "address", "", "postal address (required)")
	addClientCmd.Flags().StringArrayVar(&addClientTags, "tag", nil, "tag (repeatable)")
	_ = addClientCmd.MarkFlagRequired("name")
	_ = addClientCmd.MarkFlagRequired("phone")
	_ = addClientCmd.MarkFlagRequired("email")
	_ = addClientCmd.MarkFlagRequired("address")

	addPastryCmd.Flags().StringVar(&addPastryName, "name", "", "pastry name (required)")
	addPastryCmd.Flags().StringVar(&addPastryPrice, "price", "", "price, e.g. 4.50 (required)")
	_ = addPastryCmd.MarkFlagRequired("name")
	_ = addPastryCmd.MarkFlagRequired("price")

	addOrderCmd.Flags().IntVar(&addOrderClient, "client", 0, "client index in the displayed list (required)")
	addOrderCmd.Flags().StringArrayVar(&addOrderItems, "item", nil, "order line as NAME:QUANTITY (repeatable, required)")
	_ = addOrderCmd.MarkFlagRequired("client")
	_ = addOrderCmd.MarkFlagRequired("item")

	addCmd.AddCommand(addClientCmd)
	addCmd.AddCommand(addPastryCmd)
	addCmd.AddCommand(addOrderCmd)
}

func runAddClient(cmd *cobra.Command, args []string) error {
	person, err := buildPerson(addClientName, addClientPhone, addClientEmail, addClientAddress, addClientTags)
	if err != nil {
		return err
	}
	res, err := command.Add{Payload: command.AddClient{Person: person}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

func runAddPastry(cmd *cobra.Command, args []string) error {
	name, err := model.NewName(addPastryName)
	if err != nil {
		return fmt.Errorf("invalid name %q: %w", addPastryName, err)
	}
	price, err := model.NewPrice(addPastryPrice)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", addPastryPrice, err)
	}
	res, err := command.Add{Payload: command.AddPastry{Pastry: model.NewPastry(name, price)}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

func runAddOrder(cmd *cobra.Command, args []string) error {
	if addOrderClient < 1 {
		return fmt.Errorf("client index must be a positive integer, got %d", addOrderClient)
	}
	specs, err := parseItemSpecs(addOrderItems)
	if err != nil {
		return err
	}
	res, err := command.Add{Payload: command.AddOrder{
		ClientIndex: addOrderClient - 1,
		Items:       specs,
	}}.Execute(mdl)
	if err != nil {
		return err
	}
	if err := saveBook(); err != nil {
		return err
	}
	return printResult(res)
}

// buildPerson validates the raw client fields into a Person.
func buildPerson(name, phone, email, address string, tags []string) (*model.Person, error) {
	modelName, err := model.NewName(name)
	if err != nil {
		return nil, fmt.Errorf("invalid name %q: %w", name, err)
	}
	modelPhone, err := model.NewPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("invalid phone %q: %w", phone, err)
	}
	modelEmail, err := model.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, err)
	}
	modelAddress, err := model.NewAddress(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	modelTags := make([]model.Tag, 0, len(tags))
	for _, t := range tags {
		tag, err := model.NewTag(t)
		if err != nil {
			return nil, fmt.Errorf("invalid tag %q: %w", t, err)
		}
		modelTags = append(modelTags, tag)
	}
	return model.NewPerson(modelName, modelPhone, modelEmail, modelAddress, modelTags), nil
}
