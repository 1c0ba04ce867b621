package cli

import (
	"github.com/spf13/cobra"

	"oficina/internal/domain/entities"
	"oficina/internal/infrastructure/config"
)

func newCompanyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage the shop identification printed on receipts",
	}
	cmd.AddCommand(newCompanyShowCmd(a), newCompanySetCmd(a), newPaymentMethodsCmd())
	return cmd
}

func newCompanyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured shop identification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Company
			cmd.Printf("%s\n%s\n%s\nCNPJ: %s\n", c.Name, c.Address, c.Phone, c.TaxID)
			return nil
		},
	}
}

func newCompanySetCmd(a *app) *cobra.Command {
	var name, address, phone, taxID string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the shop identification in config.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Company
			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("address") {
				c.Address = address
			}
			if cmd.Flags().Changed("phone") {
				c.Phone = phone
			}
			if cmd.Flags().Changed("tax-id") {
				c.TaxID = taxID
			}
			if err := config.SaveCompany(c); err != nil {
				return err
			}
			cmd.Println("company record saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "shop name")
	cmd.Flags().StringVar(&address, "address", "", "shop address")
	cmd.Flags().StringVar(&phone, "phone", "", "shop phone")
	cmd.Flags().StringVar(&taxID, "tax-id", "", "CNPJ")
	return cmd
}

func newPaymentMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payment-methods",
		Short: "List the payment labels offered by the intake form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, method := range entities.PaymentMethods {
				if pct, ok := entities.SuggestedDiscountPct[method]; ok {
					cmd.Printf("%-15s (suggested discount %.0f%%)\n", method, pct)
					continue
				}
				cmd.Println(method)
			}
			return nil
		},
	}
}
