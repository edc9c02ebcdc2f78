package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pracd-client/internal/authgate"
	"pracd-client/internal/identity"
	"pracd-client/internal/model"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator surface",
		Long: `Moderation commands for administrators.

Examples:
  pracd admin login --email root@pracd.local --password secret
  pracd admin users
  pracd admin set-user-status <user-id> Inactive
  pracd admin appointments
  pracd admin set-appointment-status <appt-id> approved
  pracd admin stats`,
	}
	cmd.AddCommand(
		newAdminLoginCmd(a),
		newAdminStatsCmd(a),
		newAdminUsersCmd(a),
		newAdminAppointmentsCmd(a),
		newAdminEnquiriesCmd(a),
		newAdminSetUserStatusCmd(a),
		newAdminSetAppointmentStatusCmd(a),
	)
	return cmd
}

func newAdminLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate on the admin surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			token, err := a.client.AdminLogin(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			// the surface is public; the redirect is not
			id, err := identity.Resolve(token)
			if err != nil {
				a.sessions.Revoke()
				return fmt.Errorf("admin login returned an unreadable token")
			}
			if d := authgate.AdminRedirect(&id); !d.Allow {
				a.sessions.Revoke()
				return fmt.Errorf("this account is not an administrator")
			}
			fmt.Printf("Logged in as %s (admin)\n", displayName(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	return cmd
}

// requireAdmin refuses early with a readable message; the backend enforces
// the real check on every call regardless.
func requireAdmin(a *app) (*model.Identity, error) {
	id := currentIdentity(a)
	if d := authgate.AdminRedirect(id); !d.Allow {
		return nil, fmt.Errorf("%s: pracd admin login", d.Reason)
	}
	return id, nil
}

func newAdminStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Global counts (with client-side fallback)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			st, err := a.aggregator.AdminOverview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Total Appointments: %d\n", st.TotalAppointments)
			fmt.Printf("Active Doctors:     %d\n", st.ActiveDoctors)
			fmt.Printf("Active Patients:    %d\n", st.ActivePatients)
			return nil
		},
	}
}

func newAdminUsersCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts for moderation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			users, err := a.client.Profiles(cmd.Context(), model.AccountStatus(status))
			if err != nil {
				return err
			}
			for _, u := range users {
				if u.Role == model.RoleAdmin {
					continue
				}
				fmt.Printf("%-24s  %-20s  %-8s  %s\n", u.Key(), u.DisplayName(), u.Role, u.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter: Active or Inactive")
	return cmd
}

func newAdminAppointmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List every appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			appts, err := a.client.Appointments(cmd.Context())
			if err != nil {
				return err
			}
			printAppointments(appts)
			return nil
		},
	}
}

func newAdminEnquiriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enquiries",
		Short: "List contact enquiries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			enquiries, err := a.client.Enquiries(cmd.Context())
			if err != nil {
				return err
			}
			if len(enquiries) == 0 {
				fmt.Println("No enquiries")
				return nil
			}
			for _, e := range enquiries {
				fmt.Printf("%-20s  %-24s  %-12s  %s\n", e.FirstName+" "+e.LastName, e.Email, e.MobileNumber, e.Message)
			}
			return nil
		},
	}
}

func newAdminSetUserStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-user-status <user-id> <Active|Inactive>",
		Short: "Moderate an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			if err := a.moderator.SetAccountStatus(cmd.Context(), args[0], model.AccountStatus(args[1]), nil); err != nil {
				return err
			}
			fmt.Printf("User %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}

func newAdminSetAppointmentStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-appointment-status <appt-id> <approved|rejected>",
		Short: "Moderate an appointment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(a); err != nil {
				return err
			}
			if err := a.moderator.SetAppointmentStatus(cmd.Context(), args[0], model.AppointmentStatus(args[1]), nil); err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}
