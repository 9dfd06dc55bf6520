package app

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/report"
)

func newExportCmd() *cobra.Command {
	var (
		department     string
		literatureType string
		affiliation    string
		search         string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the scoped book list as CSV",
		Long: `Write a UTF-8 CSV (with byte-order mark, so spreadsheet software
detects the encoding) of the books matching the scope flags. With
--output - the CSV goes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := scopedBooks(department, literatureType, affiliation, search)
			if err != nil {
				return err
			}

			if output == "-" {
				return report.WriteCSV(os.Stdout, books)
			}

			if output == "" {
				output = report.Filename(department, literatureType, time.Now())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := report.WriteCSV(f, books); err != nil {
				return err
			}
			ok("Exported %d book(s) to %s", len(books), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Filter by department")
	cmd.Flags().StringVarP(&literatureType, "type", "t", "", "Filter by literature type")
	cmd.Flags().StringVar(&affiliation, "affiliation", "", "Filter by affiliation (staff|external)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search in title and author")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: derived from scope, - for stdout)")

	return cmd
}
