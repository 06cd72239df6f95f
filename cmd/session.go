package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/session"
)

// withSession runs fn with a loaded session manager.
func withSession(cmd *cobra.Command, fn func(*session.Manager) error) error {
	ctx := cmd.Context()
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close(ctx)

	mgr, release, err := env.openSession(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(mgr)
}

func credentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func describeAuthError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidEmail):
		return fmt.Errorf("that does not look like an email address: %w", err)
	case errors.Is(err, session.ErrInvalidCredentials):
		return fmt.Errorf("email and password are required: %w", err)
	}
	return err
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			return withSession(cmd, func(m *session.Manager) error {
				u, err := m.Login(cmd.Context(), email, password)
				if err != nil {
					return describeAuthError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", u.DisplayName, u.Email)
				return nil
			})
		},
	}
	credentialFlags(cmd)
	return cmd
}

func newSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")
			return withSession(cmd, func(m *session.Manager) error {
				u, err := m.Signup(cmd.Context(), email, password, name)
				if err != nil {
					return describeAuthError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are signed in as <%s>\n", u.DisplayName, u.Email)
				return nil
			})
		},
	}
	credentialFlags(cmd)
	cmd.Flags().String("name", "", "Display name (derived from the email when empty)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(m *session.Manager) error {
				if m.Current() == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
					return nil
				}
				if err := m.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
				return nil
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(m *session.Manager) error {
				u := m.Current()
				if u == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.DisplayName, u.Email)
				return nil
			})
		},
	}
}
