package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !deleteYes {
			fmt.Fprintf(cmd.OutOrStdout(), "delete order %s? [y/N] ", id)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("aborted"))
				return nil
			}
		}

		if err := apiClient().DeleteOrder(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", errorStyle.Render(err.Error()))
		}

		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("deleted order %s", id)))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}
