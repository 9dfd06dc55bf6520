package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/session"
)

func newAddCmd() *cobra.Command {
	var (
		title       string
		author      string
		litType     string
		department  string
		year        string
		place       string
		condition   string
		permission  bool
		external    bool
		link        string
		createdDate string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the fund",
		Long: `Add a book non-interactively. Title, author, type, and link are
required; the store assigns the id and the server timestamp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Load(sessPath)
			if err != nil {
				return err
			}

			perm := catalog.PermissionNotGranted
			if permission {
				perm = catalog.PermissionGranted
			}
			aff := catalog.AffiliationStaff
			if external {
				aff = catalog.AffiliationExternal
			}
			if createdDate == "" {
				createdDate = time.Now().UTC().Format("2006-01-02")
			} else if _, err := time.Parse("2006-01-02", createdDate); err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", createdDate)
			}

			book := catalog.Book{
				Title:            title,
				Author:           author,
				LiteratureType:   litType,
				Department:       department,
				Year:             year,
				Place:            place,
				Condition:        condition,
				AuthorPermission: perm,
				Affiliation:      aff,
				Link:             link,
				CreatedDate:      createdDate,
				AddedBy:          sess.Staff,
			}
			if department != "" && !catalog.KnownDepartment(department) {
				warn("unknown department %q, will be grouped under %q", department, catalog.DepartmentOther)
			}

			created, err := st.CreateBook(book)
			if err != nil {
				return err
			}
			ok("Added %q (%s)", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&author, "author", "", "Author name (required)")
	cmd.Flags().StringVarP(&litType, "type", "t", "", "Literature type (required)")
	cmd.Flags().StringVarP(&department, "department", "d", "", "Department")
	cmd.Flags().StringVar(&year, "year", "", "Publication year")
	cmd.Flags().StringVar(&place, "place", "", "Publication place")
	cmd.Flags().StringVar(&condition, "condition", "", "Physical condition")
	cmd.Flags().BoolVar(&permission, "permission", false, "Author permission granted")
	cmd.Flags().BoolVar(&external, "external", false, "External (non-institute) author")
	cmd.Flags().StringVar(&link, "link", "", "Electronic copy link (required)")
	cmd.Flags().StringVar(&createdDate, "date", "", "Record date YYYY-MM-DD (default: today)")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}
