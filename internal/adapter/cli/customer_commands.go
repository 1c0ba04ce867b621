package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"oficina/internal/domain/entities"
)

func newCustomerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage the customer directory",
	}
	cmd.AddCommand(newCustomerAddCmd(a), newCustomerSearchCmd(a), newCustomerListCmd(a), newCustomerUpdateCmd(a))
	return cmd
}

func newCustomerAddCmd(a *app) *cobra.Command {
	var address, phone, document string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.customers.Create(cmd.Context(), args[0], address, phone, document)
			if err != nil {
				return err
			}
			cmd.Printf("customer %d registered: %s\n", c.ID, c.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&document, "document", "", "CPF/CNPJ")
	return cmd
}

func newCustomerUpdateCmd(a *app) *cobra.Command {
	var name, address, phone, document string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a customer's contact fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}
			c, err := a.customers.Update(cmd.Context(), uint(id), name, address, phone, document)
			if err != nil {
				return err
			}
			cmd.Printf("customer %d updated\n", c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&document, "document", "", "CPF/CNPJ")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCustomerSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search customers by name or phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := a.customers.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCustomers(cmd, matches)
			return nil
		},
	}
}

func newCustomerListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every customer ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.customers.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			printCustomers(cmd, all)
			return nil
		},
	}
}

func printCustomers(cmd *cobra.Command, customers []entities.Customer) {
	for _, c := range customers {
		cmd.Printf("%5d  %-30s  %-15s  %s\n", c.ID, c.Name, c.Phone, c.Document)
	}
	cmd.Printf("%d customer(s)\n", len(customers))
}
