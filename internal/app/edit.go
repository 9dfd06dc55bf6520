package app

import (
	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func newEditCmd() *cobra.Command {
	var (
		title      string
		author     string
		litType    string
		department string
		year       string
		place      string
		condition  string
		link       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing book",
		Long: `Apply a partial update: only the flags given change, everything
else keeps its value. The id may be a unique prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}

			var p catalog.Patch
			set := func(flag string, dst **string, val string) {
				if cmd.Flags().Changed(flag) {
					*dst = &val
				}
			}
			set("title", &p.Title, title)
			set("author", &p.Author, author)
			set("type", &p.LiteratureType, litType)
			set("department", &p.Department, department)
			set("year", &p.Year, year)
			set("place", &p.Place, place)
			set("condition", &p.Condition, condition)
			set("link", &p.Link, link)

			updated, err := st.UpdateBook(b.ID, p)
			if err != nil {
				return err
			}
			ok("Updated %q (%s)", updated.Title, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&author, "author", "", "New author")
	cmd.Flags().StringVarP(&litType, "type", "t", "", "New literature type")
	cmd.Flags().StringVarP(&department, "department", "d", "", "New department (empty to unassign)")
	cmd.Flags().StringVar(&year, "year", "", "New year")
	cmd.Flags().StringVar(&place, "place", "", "New publication place")
	cmd.Flags().StringVar(&condition, "condition", "", "New condition")
	cmd.Flags().StringVar(&link, "link", "", "New link")

	return cmd
}
