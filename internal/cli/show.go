package cli

import (
	"fmt"

	"order-desk/internal/client"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := apiClient().GetOrder(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s", errorStyle.Render(err.Error()))
		}

		printOrder(cmd, order)
		return nil
	},
}

func printOrder(cmd *cobra.Command, order *client.Order) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render(order.Customer))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("id: %s  date: %s", order.ID, order.Date)))
	for _, item := range order.Items {
		fmt.Fprintf(out, "  %-30s  x%-4d  @ %8.2f\n", item.ItemName, item.Quantity, item.Price)
	}
	fmt.Fprintln(out, totalStyle.Render(fmt.Sprintf("total: %.2f", order.Total)))
}
