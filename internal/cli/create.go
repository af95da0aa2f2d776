package cli

import (
	"fmt"

	"order-desk/internal/client"

	"github.com/spf13/cobra"
)

var (
	createCustomer string
	createItems    []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, err := buildInput(createCustomer, createItems)
		if err != nil {
			return err
		}

		// Display preview only; the server recomputes the stored total.
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("preview total: %.2f", client.PreviewTotal(input.Items))))

		order, err := apiClient().CreateOrder(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("%s", errorStyle.Render(err.Error()))
		}

		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("created order %s (total %.2f)", order.ID, order.Total)))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createCustomer, "customer", "", "customer name")
	createCmd.Flags().StringArrayVar(&createItems, "item", nil, "line item as name:quantity:price (repeatable)")
}
