package app

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/report"
)

func newActCmd() *cobra.Command {
	var (
		department     string
		literatureType string
		affiliation    string
		output         string
	)

	cmd := &cobra.Command{
		Use:   "act",
		Short: "Render the print-ready act document for a scope",
		Long: `Write the numbered "akt" list for the books matching the scope:
institute title block, scope line, numbered table, total, and
signature lines. Defaults to stdout for piping to a printer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := scopedBooks(department, literatureType, affiliation, "")
			if err != nil {
				return err
			}

			scope := report.Scope{
				Institute:      cfg.Institute.Name,
				Department:     department,
				LiteratureType: literatureType,
				Date:           time.Now(),
			}

			w := os.Stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := report.WriteAct(w, books, scope); err != nil {
				return err
			}
			if output != "" && output != "-" {
				ok("Act with %d book(s) written to %s", len(books), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", "", "Scope to a department")
	cmd.Flags().StringVarP(&literatureType, "type", "t", "", "Scope to a literature type")
	cmd.Flags().StringVar(&affiliation, "affiliation", "", "Scope to an affiliation (staff|external)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
