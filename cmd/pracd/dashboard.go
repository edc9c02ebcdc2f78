package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pracd-client/internal/authgate"
	"pracd-client/internal/booking"
	"pracd-client/internal/identity"
	"pracd-client/internal/model"
)

// currentIdentity resolves the stored session, or nil when absent/expired/
// undecodable — all three collapse to "no session".
func currentIdentity(a *app) *model.Identity {
	token, ok := a.sessions.Current()
	if !ok {
		return nil
	}
	id, err := identity.Resolve(token)
	if err != nil {
		return nil
	}
	return &id
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the overview for your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := currentIdentity(a)
			if d := authgate.CanAccess(authgate.RouteDashboard, id); !d.Allow {
				fmt.Println("Please log in to continue")
				fmt.Println("Access to this page is restricted. Log in with: pracd login")
				return nil
			}

			ctx := cmd.Context()
			switch id.Role {
			case model.RolePatient:
				_, st, err := a.aggregator.PatientOverview(ctx, id.ID)
				if err != nil {
					return err
				}
				fmt.Printf("Total Appointments: %d\n", st.Total)
				fmt.Printf("Upcoming:           %d\n", st.Upcoming)
				if !st.Next.IsZero() {
					fmt.Printf("Next Appointment:   %s\n", booking.FormatDate(st.Next))
				}
			case model.RoleDoctor:
				_, st, err := a.aggregator.DoctorOverview(ctx, id.ID)
				if err != nil {
					return err
				}
				fmt.Printf("Total Appointments: %d\n", st.Total)
				fmt.Printf("Upcoming:           %d\n", st.Upcoming)
				fmt.Printf("Earnings:           %.2f\n", st.Earnings)
			case model.RoleAdmin:
				st, err := a.aggregator.AdminOverview(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Total Appointments: %d\n", st.TotalAppointments)
				fmt.Printf("Active Doctors:     %d\n", st.ActiveDoctors)
				fmt.Printf("Active Patients:    %d\n", st.ActivePatients)
			default:
				return fmt.Errorf("unknown role %q", id.Role)
			}
			return nil
		},
	}
}

func newAppointmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := currentIdentity(a)
			if d := authgate.CanAccess(authgate.RouteDashboard, id); !d.Allow {
				fmt.Println("Please log in to continue")
				return nil
			}

			ctx := cmd.Context()
			var (
				appts []model.Appointment
				err   error
			)
			if id.Role == model.RoleDoctor {
				appts, err = a.client.AppointmentsByDoctor(ctx, id.ID)
			} else {
				appts, err = a.client.AppointmentsByPatient(ctx, id.ID)
			}
			if err != nil {
				return err
			}
			printAppointments(appts)
			return nil
		},
	}
}

func printAppointments(appts []model.Appointment) {
	if len(appts) == 0 {
		fmt.Println("No appointments")
		return
	}
	for _, ap := range appts {
		fmt.Printf("%-24s  %-10s  %-8s  %-20s  %s\n",
			ap.Key(), booking.FormatDate(ap.Date), ap.TimeSlot, ap.PatientName, ap.Status)
	}
}
