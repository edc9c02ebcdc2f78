package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pracd-client/internal/api"
	"pracd-client/internal/booking"
	"pracd-client/internal/identity"
	"pracd-client/internal/model"
)

func newBookCmd(a *app) *cobra.Command {
	var (
		date        string
		slot        string
		patientType string
		name        string
		phone       string
		email       string
	)
	cmd := &cobra.Command{
		Use:   "book <doctor-id>",
		Short: "Book an appointment with a doctor",
		Long: `Walk the booking steps for a doctor: appointment info, date and
time slot, then patient details. Requires a session; inactive patient
accounts cannot book.

Examples:
  pracd book D1 --date 2026-09-10 --slot "10:10 am" \
    --name Asha --phone 9876543210 --email a@x.com
  pracd book D1 --slot "9:00 am" --patient-type myself`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doctorID := args[0]

			doctor, err := a.client.PublicDoctor(ctx, doctorID)
			if err != nil {
				return err
			}

			// own profile enables the myself-prefill and the inactive guard;
			// booking still works without it
			var profile *model.Profile
			if token, ok := a.sessions.Current(); ok {
				if id, err := identity.Resolve(token); err == nil && id.ID != "" {
					profile, _ = a.client.Profile(ctx, id.ID)
				}
			}

			w := booking.New(a.sessions, a.client, doctorID, doctor, profile)

			if err := w.SelectDateTime(); err != nil {
				return bookingRefusal(err)
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD")
				}
				w.SelectDate(d)
			}
			if slot == "" {
				fmt.Println("Available time slots:")
				for _, s := range booking.TimeSlots {
					fmt.Println("  " + s)
				}
				return fmt.Errorf("--slot is required")
			}
			if err := w.SelectSlot(slot); err != nil {
				return err
			}
			if err := w.EnterBasicInfo(); err != nil {
				return bookingRefusal(err)
			}
			if patientType != "" {
				w.SetPatientType(model.PatientType(patientType))
			}
			if name != "" {
				w.SetName(name)
			}
			if phone != "" {
				w.SetPhone(phone)
			}
			if email != "" {
				w.SetEmail(email)
			}

			appt, err := w.Confirm(cmd.Context())
			if err != nil {
				return bookingRefusal(err)
			}
			fmt.Printf("Booked %s with %s on %s, fee %.0f (status %s)\n",
				appt.TimeSlot, appt.DoctorName, booking.FormatDate(appt.Date), appt.Fees, appt.Status)
			fmt.Println("See it with: pracd appointments")
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "appointment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&slot, "slot", "", `time slot label, e.g. "10:10 am"`)
	cmd.Flags().StringVar(&patientType, "patient-type", "myself", "myself or someoneelse")
	cmd.Flags().StringVar(&name, "name", "", "patient name")
	cmd.Flags().StringVar(&phone, "phone", "", "10-digit phone number")
	cmd.Flags().StringVar(&email, "email", "", "patient email")
	return cmd
}

func bookingRefusal(err error) error {
	switch {
	case errors.Is(err, api.ErrAuthRequired):
		return fmt.Errorf("you need to log in to book an appointment: pracd login")
	case errors.Is(err, booking.ErrAccountInactive):
		return fmt.Errorf("your account is inactive; contact an administrator")
	default:
		return err
	}
}
