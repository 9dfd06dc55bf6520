package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jizpi-library/fondctl/internal/session"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		staff    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		Long: `Create a session for the scriptable commands. The staff name is
recorded on every book added with 'fondctl add'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Login(email, password)
			if err != nil {
				return err
			}

			if staff != "" {
				if !cfg.HasStaff(staff) {
					warn("%q is not on the configured staff roster", staff)
				}
				sess.Staff = staff
			}

			if err := session.Save(sessPath, sess); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
			ok("Logged in as %s (%s)", sess.Email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&staff, "staff", "", "Staff identity to work as")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Clear(sessPath); err != nil {
				return err
			}
			ok("Logged out")
			return nil
		},
	}
}
