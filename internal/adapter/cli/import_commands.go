package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"oficina/internal/usecase"
)

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import legacy CSV exports",
	}
	cmd.AddCommand(
		newImportRunCmd("customers", "Import a customer CSV export", a.importCustomers),
		newImportRunCmd("orders", "Import a service-order CSV export", a.importOrders),
	)
	return cmd
}

func (a *app) importCustomers(ctx context.Context, r io.Reader) (usecase.ImportResult, error) {
	return a.importer.ImportCustomers(ctx, r)
}

func (a *app) importOrders(ctx context.Context, r io.Reader) (usecase.ImportResult, error) {
	return a.importer.ImportOrders(ctx, r)
}

func newImportRunCmd(name, short string, run func(context.Context, io.Reader) (usecase.ImportResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := run(cmd.Context(), f)
			if err != nil {
				return err
			}
			cmd.Printf("inserted: %d, duplicates: %d, errors: %d\n", res.Inserted, res.Duplicates, res.Errors)
			return nil
		},
	}
}
