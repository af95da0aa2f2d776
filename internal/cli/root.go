// Package cli implements the terminal frontend for the orders API.
package cli

import (
	"os"

	"order-desk/internal/client"

	"github.com/spf13/cobra"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "ordercli",
	Short:         "Manage orders from the terminal",
	Long:          "ordercli lists, creates, edits and deletes orders through the order-desk API.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "base URL of the orders API")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

func defaultAPIURL() string {
	if v := os.Getenv("ORDERS_API_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func apiClient() *client.Client {
	return client.New(apiURL)
}
