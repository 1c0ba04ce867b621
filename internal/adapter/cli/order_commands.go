package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase"
)

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage service orders",
	}
	cmd.AddCommand(
		newOrderOpenCmd(a),
		newOrderShowCmd(a),
		newOrderListCmd(a),
		newOrderSearchCmd(a),
		newOrderStatusCmd(a),
		newOrderCloseCmd(a),
		newOrderItemCmd(a),
		newNextCodeCmd(a),
	)
	return cmd
}

func newOrderOpenCmd(a *app) *cobra.Command {
	var (
		customerID uint
		device     string
		brand      string
		model      string
		serial     string
		fault      string
		discount   float64
		payment    string
		notes      string
		items      []string
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new service order",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.CreateOrderInput{
				CustomerID:    customerID,
				Device:        device,
				Brand:         brand,
				Model:         model,
				SerialNumber:  serial,
				ReportedFault: fault,
				Discount:      discount,
				PaymentMethod: payment,
				Notes:         notes,
			}
			for _, raw := range items {
				item, err := parseItemFlag(raw)
				if err != nil {
					return err
				}
				in.Items = append(in.Items, item)
			}

			order, err := a.orders.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Printf("order %s opened (subtotal %.2f, final %.2f)\n", order.Code, order.Subtotal, order.FinalAmount)
			return nil
		},
	}
	cmd.Flags().UintVar(&customerID, "customer", 0, "customer id")
	cmd.Flags().StringVar(&device, "device", "", "device type")
	cmd.Flags().StringVar(&brand, "brand", "", "device brand")
	cmd.Flags().StringVar(&model, "model", "", "device model")
	cmd.Flags().StringVar(&serial, "serial", "", "serial number")
	cmd.Flags().StringVar(&fault, "fault", "", "reported fault")
	cmd.Flags().Float64Var(&discount, "discount", 0, "manual discount")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method")
	cmd.Flags().StringVar(&notes, "notes", "", "internal notes")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as description=value, repeatable")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

// parseItemFlag reads a description=value pair; the value part is optional.
func parseItemFlag(raw string) (usecase.NewLineItem, error) {
	desc := raw
	value := 0.0
	if i := strings.LastIndexByte(raw, '='); i >= 0 {
		v, err := strconv.ParseFloat(raw[i+1:], 64)
		if err != nil {
			return usecase.NewLineItem{}, fmt.Errorf("invalid item value in %q", raw)
		}
		desc, value = raw[:i], v
	}
	return usecase.NewLineItem{Description: desc, UnitValue: value}, nil
}

func newOrderShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show a service order with customer and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.orders.GetByCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(order, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
}

func newOrderListCmd(a *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.orders.List(cmd.Context(), status)
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func newOrderSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search orders by code or customer name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.orders.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}
}

func newOrderStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <code> <status>",
		Short: "Move an order to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.orders.UpdateStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if order.ExitDate != "" {
				cmd.Printf("order %s is now %s (delivered %s)\n", order.Code, order.Status, order.ExitDate)
			} else {
				cmd.Printf("order %s is now %s\n", order.Code, order.Status)
			}
			return nil
		},
	}
}

func newOrderCloseCmd(a *app) *cobra.Command {
	var (
		work     string
		subtotal float64
		discount float64
		payment  string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "close <code>",
		Short: "Record the performed work and closing totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.orders.UpdateWork(cmd.Context(), args[0], usecase.WorkInput{
				WorkPerformed: work,
				Subtotal:      subtotal,
				Discount:      discount,
				PaymentMethod: payment,
				Notes:         notes,
			})
			if err != nil {
				return err
			}
			cmd.Printf("order %s closed at %.2f (discount %.2f)\n", order.Code, order.FinalAmount, order.Discount)
			return nil
		},
	}
	cmd.Flags().StringVar(&work, "work", "", "work performed")
	cmd.Flags().Float64Var(&subtotal, "subtotal", 0, "item subtotal")
	cmd.Flags().Float64Var(&discount, "discount", 0, "manual discount")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method")
	cmd.Flags().StringVar(&notes, "notes", "", "internal notes")
	return cmd
}

func newOrderItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage an order's line items",
	}

	var value float64
	add := &cobra.Command{
		Use:   "add <code> <description>",
		Short: "Append a billable part or charge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.orders.AddLineItem(cmd.Context(), args[0], args[1], value)
			if err != nil {
				return err
			}
			cmd.Printf("item %d added to %s\n", item.ID, item.OrderCode)
			return nil
		},
	}
	add.Flags().Float64Var(&value, "value", 0, "unit value")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a line item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if err := a.orders.RemoveLineItem(cmd.Context(), uint(id)); err != nil {
				return err
			}
			cmd.Printf("item %d removed\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newNextCodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next-code",
		Short: "Preview the next order code for this year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(a.orders.NextCode(cmd.Context()))
			return nil
		},
	}
}

func printOrders(cmd *cobra.Command, orders []entities.ServiceOrder) {
	for _, o := range orders {
		name := ""
		if o.Customer != nil {
			name = o.Customer.Name
		}
		cmd.Printf("%-9s  %-25s  %-15s  %-15s  %8.2f  %s\n",
			o.Code, name, o.Device, o.Status, o.FinalAmount, o.EntryDate)
	}
	cmd.Printf("%d order(s)\n", len(orders))
}
