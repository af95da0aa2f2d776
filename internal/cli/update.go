package cli

import (
	"fmt"

	"order-desk/internal/client"

	"github.com/spf13/cobra"
)

var (
	updateCustomer string
	updateItems    []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an order's customer name and items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := buildInput(updateCustomer, updateItems)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("preview total: %.2f", client.PreviewTotal(input.Items))))

		order, err := apiClient().UpdateOrder(cmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("%s", errorStyle.Render(err.Error()))
		}

		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("updated order %s (total %.2f)", order.ID, order.Total)))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateCustomer, "customer", "", "customer name")
	updateCmd.Flags().StringArrayVar(&updateItems, "item", nil, "line item as name:quantity:price (repeatable)")
}
