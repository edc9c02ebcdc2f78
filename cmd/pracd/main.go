package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pracd-client/internal/api"
	"pracd-client/internal/dashboard"
	"pracd-client/internal/moderation"
	"pracd-client/internal/session"
)

// app bundles the shared collaborators every command needs.
type app struct {
	sessions   *session.Store
	client     *api.Client
	aggregator *dashboard.Aggregator
	moderator  *moderation.Moderator
}

func newApp() *app {
	sessions := session.New(env("PRACD_SESSION_FILE", session.DefaultPath()))
	client := api.New(env("PRACD_API_URL", "http://localhost:8080"), sessions)
	return &app{
		sessions:   sessions,
		client:     client,
		aggregator: dashboard.New(client),
		moderator:  moderation.New(client),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pracd",
		Short: "PracD appointment booking client",
		Long: `Command-line client for the PracD appointment backend.

Patients discover doctors and book time slots, doctors review incoming
bookings, administrators moderate users and appointments.

Examples:
  pracd login --email asha@example.com --password secret
  pracd doctors
  pracd book D1 --slot "10:10 am" --name Asha --phone 9876543210 --email a@x.com
  pracd dashboard
  pracd admin stats`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDoctorsCmd(a),
		newBookCmd(a),
		newAppointmentsCmd(a),
		newDashboardCmd(a),
		newProfileCmd(a),
		newContactCmd(a),
		newAdminCmd(a),
	)
	return root
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
