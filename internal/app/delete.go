package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/util"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book from the fund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}

			if !force {
				if !util.IsTTY() {
					return fmt.Errorf("refusing to delete without --force in non-interactive mode")
				}
				fmt.Printf("Delete %q by %s? (y/N): ", b.Title, b.Author)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" && response != "yes" {
					warn("cancelled")
					return nil
				}
			}

			if err := st.DeleteBook(b.ID); err != nil {
				return err
			}
			ok("Deleted %q (%s)", b.Title, b.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
