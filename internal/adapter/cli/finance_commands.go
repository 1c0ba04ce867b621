package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"oficina/internal/domain/entities"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		year  int
		month int
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Monthly financial summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.finance.MonthlySummary(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			cmd.Printf("Month %s: %d order(s)\n", s.Month, s.OrderCount)
			cmd.Printf("  Gross:     %10.2f\n", s.Gross)
			cmd.Printf("  Discounts: %10.2f\n", s.Discounts)
			cmd.Printf("  Final:     %10.2f\n", s.Final)
			for _, p := range s.ByPaymentMethod {
				cmd.Printf("  %-20s %3d  %10.2f\n", p.PaymentMethod, p.OrderCount, p.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (defaults to current)")
	return cmd
}

func newMonthsCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "months",
		Short: "Revenue per month over a trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.finance.TrailingMonths(cmd.Context(), n)
			if err != nil {
				return err
			}
			for _, r := range rows {
				cmd.Printf("%s  %3d order(s)  %10.2f\n", r.Month, r.OrderCount, r.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 12, "number of trailing months")
	return cmd
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open order counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.finance.StatusCounts(cmd.Context())
			if err != nil {
				return err
			}
			statuses := make([]string, 0, len(counts))
			for s := range counts {
				statuses = append(statuses, string(s))
			}
			sort.Strings(statuses)
			for _, s := range statuses {
				cmd.Printf("%-20s %d\n", s, counts[entities.OrderStatus(s)])
			}

			pending, err := a.finance.PendingCount(cmd.Context())
			if err != nil {
				return err
			}
			ready, err := a.finance.ReadyCount(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("pending: %d, ready for pickup: %d\n", pending, ready)
			return nil
		},
	}
}
