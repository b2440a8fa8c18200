package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", id.Name, id.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) registerCmd() *cobra.Command {
	var name, email, phone, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Register(cmd.Context(), name, email, phone, password); err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account created, you are signed in")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.session.Identity()
			if id == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s\n", id.Name, id.Email, id.Role)
			if id.CalendarID != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "calendar: %s\n", *id.CalendarID)
			}
			return nil
		},
	}
}

func (a *App) profileCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your profile name",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.session.Identity()
			if id == nil {
				return errors.New("sign in first")
			}
			if err := a.api.UpdateUserProfile(cmd.Context(), id.ID, name); err != nil {
				return friendly(err)
			}
			a.session.SetName(name)
			fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.MarkFlagRequired("name")
	return cmd
}
