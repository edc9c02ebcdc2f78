package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pracd-client/internal/identity"
	"pracd-client/internal/model"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			token, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			id, err := identity.Resolve(token)
			if err != nil {
				return fmt.Errorf("login succeeded but token is unreadable: %w", err)
			}
			fmt.Printf("Logged in as %s (%s)\n", displayName(id), id.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var username, email, password, role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient or doctor account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || email == "" || password == "" {
				return fmt.Errorf("--username, --email and --password are required")
			}
			r := model.Role(role)
			if r != model.RolePatient && r != model.RoleDoctor {
				return fmt.Errorf("--role must be patient or doctor")
			}
			if err := a.client.Register(cmd.Context(), username, email, password, r); err != nil {
				return err
			}
			fmt.Println("Registered. Log in with: pracd login")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", "patient", "patient or doctor")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// server revocation is best-effort; local teardown always happens
			a.client.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, ok := a.sessions.Current()
			if !ok {
				fmt.Println("Not logged in")
				return nil
			}
			id, err := identity.Resolve(token)
			if err != nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> role=%s id=%s\n", displayName(id), id.Email, id.Role, id.ID)
			return nil
		},
	}
}

func displayName(id model.Identity) string {
	if id.Name != "" {
		return id.Name
	}
	return id.Email
}
