package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		department     string
		literatureType string
		affiliation    string
		search         string
		showIDs        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the fund",
		Long: `List books, optionally scoped to a department, literature type,
affiliation, or a case-insensitive search over title and author.
Output is ordered by locale-aware title collation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := scopedBooks(department, literatureType, affiliation, search)
			if err != nil {
				return err
			}

			if len(books) == 0 {
				warn("no books match")
				return nil
			}

			header("%-40s %-24s %-18s %4s", "TITLE", "AUTHOR", "TYPE", "YEAR")
			for _, b := range books {
				line := fmt.Sprintf("%-40.40s %-24.24s %-18.18s %4s",
					b.Title, b.Author, b.LiteratureType, b.Year)
				if b.EffectiveAffiliation() == catalog.AffiliationExternal {
					line += " " + color.YellowString("external")
				}
				fmt.Println(line)
				if showIDs {
					fmt.Println(color.New(color.Faint).Sprintf("  %s", b.ID))
				}
			}
			fmt.Printf("\n%d book(s)\n", len(books))
			return nil
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Filter by department (\"Other\" for unassigned)")
	cmd.Flags().StringVarP(&literatureType, "type", "t", "", "Filter by literature type")
	cmd.Flags().StringVar(&affiliation, "affiliation", "", "Filter by affiliation (staff|external)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search in title and author")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show record ids")

	return cmd
}
