package cli

import (
	"fmt"

	"order-desk/internal/client"

	"github.com/spf13/cobra"
)

var listPage int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, five per page",
	RunE: func(cmd *cobra.Command, _ []string) error {
		orders, err := apiClient().FetchOrders(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", errorStyle.Render(err.Error()))
		}

		page := client.Paginate(orders, listPage)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-36s  %-20s  %-10s  %10s", "ID", "CUSTOMER", "DATE", "TOTAL")))
		for _, o := range page {
			fmt.Fprintf(out, "%-36s  %-20s  %-10s  %10.2f\n", o.ID, o.Customer, o.Date, o.Total)
		}
		if len(page) == 0 {
			fmt.Fprintln(out, dimStyle.Render("no orders on this page"))
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("page %d of %d (%d orders)", listPage, client.TotalPages(len(orders)), len(orders))))

		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
}
