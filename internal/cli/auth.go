package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, false, func(ctx context.Context) error {
				var err error
				if email == "" {
					if email, err = a.prompt("Email"); err != nil {
						return err
					}
				}
				if password == "" {
					if password, err = a.prompt("Password"); err != nil {
						return err
					}
				}

				if err := a.dash.Login(ctx, email, password); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Logged in.")
				return printOverview(a.out, a.dash.Overview())
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "operator email")
	cmd.Flags().StringVar(&password, "password", "", "operator password (prompted when empty)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, false, func(ctx context.Context) error {
				if err := a.dash.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Logged out.")
				return nil
			})
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether you are logged in and what the portfolio holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(context.Context) error {
				if !a.dash.IsAuthenticated() {
					fmt.Fprintln(a.out, "Not logged in.")
					return nil
				}
				fmt.Fprintf(a.out, "Logged in to %s\n", a.cfg.APIBaseURL)
				return printOverview(a.out, a.dash.Overview())
			})
		},
	}
}
