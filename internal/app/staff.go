package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func newStaffCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Show per-staff activity for the roster",
		Long: `Show how many books each configured staff member added on the
reference day (default: today) and all time, ordered by the day's
count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := time.Now().UTC()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
				}
				ref = parsed
			}

			books, err := st.Books()
			if err != nil {
				return err
			}

			activity := catalog.StaffDailyActivity(books, cfg.Staff, ref)
			if len(activity) == 0 {
				warn("no staff configured — add a staff list to the config file")
				return nil
			}

			header("%-28s %8s %10s", "STAFF", ref.Format("02.01"), "ALL TIME")
			for _, a := range activity {
				fmt.Printf("%-28s %8d %10d\n", a.Name, a.Today, a.AllTime)
				for _, t := range catalog.LiteratureTypes {
					if c := a.TodayByType[t]; c > 0 {
						fmt.Printf("    %-24s %d\n", t, c)
					}
				}
				if c := a.TodayByType[catalog.TypeOther]; c > 0 {
					fmt.Printf("    %-24s %d\n", catalog.TypeOther, c)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date YYYY-MM-DD (default: today)")

	return cmd
}
