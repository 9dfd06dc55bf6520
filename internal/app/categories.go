package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and manage literature categories",
		Long: `Without arguments, list the general categories (fixed types merged
with custom ones). Use 'categories add <name>' to create a custom
category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := st.Categories()
			if err != nil {
				return err
			}
			books, err := st.Books()
			if err != nil {
				return err
			}

			custom := make(map[string]bool, len(cats))
			for _, c := range cats {
				custom[c.Name] = true
			}

			header("%-30s %8s", "CATEGORY", "BOOKS")
			for _, name := range catalog.GeneralTypes(cats) {
				n := 0
				for _, b := range books {
					if b.LiteratureType == name {
						n++
					}
				}
				marker := ""
				if custom[name] {
					marker = " *"
				}
				fmt.Printf("%-30s %8d%s\n", name, n, marker)
			}
			fmt.Println("\n* custom category")
			return nil
		},
	}

	cmd.AddCommand(newCategoriesAddCmd())

	return cmd
}

func newCategoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := st.CreateCategory(args[0])
			if err != nil {
				return err
			}
			ok("Created category %q (%s)", cat.Name, cat.ID)
			return nil
		},
	}
}
