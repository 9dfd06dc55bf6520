package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func newStatsCmd() *cobra.Command {
	var showGrowth bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show fund-wide statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := st.Books()
			if err != nil {
				return err
			}

			stats := catalog.AggregateStats(books)

			header("Fund")
			fmt.Printf("  total:        %d\n", stats.Total)
			fmt.Printf("  staff:        %d\n", stats.ByAffiliation.Staff)
			fmt.Printf("  external:     %d\n", stats.ByAffiliation.External)
			fmt.Printf("  contributors: %d\n", stats.Contributors)

			header("\nBy literature type")
			for _, t := range catalog.LiteratureTypes {
				fmt.Printf("  %-22s %d\n", t, stats.ByLiteratureType[t])
			}
			if n := stats.ByLiteratureType[catalog.TypeOther]; n > 0 {
				fmt.Printf("  %-22s %d\n", catalog.TypeOther, n)
			}

			header("\nBy department")
			for _, d := range catalog.Departments {
				fmt.Printf("  %-26s %d\n", d, stats.ByDepartment[d])
			}
			fmt.Printf("  %-26s %d\n", catalog.DepartmentOther, stats.ByDepartment[catalog.DepartmentOther])

			if showGrowth {
				growth := catalog.DailyGrowth(books)
				header("\nGrowth")
				if len(growth) == 0 {
					fmt.Println("  no dated records")
				}
				for _, p := range growth {
					fmt.Printf("  %s  +%-4d %s\n", p.Date, p.Added,
						color.CyanString("%d", p.Total))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showGrowth, "growth", false, "Include the day-by-day growth table")

	return cmd
}
